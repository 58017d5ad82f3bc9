package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"CryptoBot/internal/telegram"

	"github.com/robfig/cron/v3"
)

// TableSource provides the formatted price table for the digest.
type TableSource interface {
	PriceTable() (string, error)
}

// Scheduler pushes a periodic price digest to the chat.
type Scheduler struct {
	Cron     *cron.Cron
	Source   TableSource
	Notifier *telegram.Notifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, source TableSource, tn *telegram.Notifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Source:   source,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register registers the daily digest task.
func (s *Scheduler) Register(digestCron string) error {
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDigestNow executes the digest task immediately (for manual trigger).
func (s *Scheduler) RunDigestNow() {
	s.digestTask()
}

func (s *Scheduler) digestTask() {
	log.Println("[INFO] running daily digest")
	table, err := s.Source.PriceTable()
	if err != nil {
		log.Printf("[ERROR] digest price table: %v", err)
		return
	}
	msg := fmt.Sprintf("📊 *Daily Bitcoin digest* | %s\n\n%s", time.Now().Format("2006-01-02"), table)
	if err := s.Notifier.SendWithRetry(s.Ctx, msg, 3); err != nil {
		log.Printf("[ERROR] send digest: %v", err)
	}
}
