package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CryptoBot/internal/bot"
	"CryptoBot/internal/config"
	"CryptoBot/internal/llm"
	"CryptoBot/internal/market"
	"CryptoBot/internal/prompt"
	"CryptoBot/internal/recorder"
	"CryptoBot/internal/scheduler"
	"CryptoBot/internal/session"
	"CryptoBot/internal/telegram"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CryptoBot starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	if err := prompt.ValidateTemplate(); err != nil {
		log.Fatalf("[FATAL] template validation: %v", err)
	}

	// Init market fetcher
	fetcher := market.NewCoinGeckoFetcher(cfg.Market.BaseURL, cfg.Market.Asset, cfg.Market.Currency, cfg.Proxy)
	log.Printf("[INFO] market data source: %s", fetcher.Name())

	// Init completion client
	client := llm.NewOpenRouterClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.Proxy)
	params := llm.Params{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Stop:        prompt.StopMarkers,
	}
	log.Printf("[INFO] completion backend: %s, model: %s", client.Name(), params.Model)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init orchestrator for the single configured chat session
	orch := bot.New(fetcher, client, params, session.NewStore(), rec, cfg.Market.Days)

	// Init Telegram front end
	tn := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	fe := telegram.NewFrontend(orch, tn)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init digest scheduler
	sched := scheduler.NewScheduler(ctx, orch, tn)
	if err := sched.Register(cfg.Schedule.DigestCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, fe.HandleMessage)
	log.Println("[INFO] Telegram polling started")

	// Optional: push a digest immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, pushing digest now")
		go sched.RunDigestNow()
	}

	log.Println("[INFO] CryptoBot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CryptoBot stopped")
}
