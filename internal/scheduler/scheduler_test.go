package scheduler

import (
	"context"
	"testing"

	"CryptoBot/internal/telegram"
)

type fakeSource struct{}

func (fakeSource) PriceTable() (string, error) { return "| Date | Price (USD) |\n", nil }

func TestRegister(t *testing.T) {
	s := NewScheduler(context.Background(), fakeSource{}, telegram.NewNotifier("token", "1", ""))
	if err := s.Register("0 0 9 * * *"); err != nil {
		t.Fatalf("valid cron spec rejected: %v", err)
	}
}

func TestRegister_InvalidSpec(t *testing.T) {
	s := NewScheduler(context.Background(), fakeSource{}, telegram.NewNotifier("token", "1", ""))
	if err := s.Register("not a cron spec"); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}
