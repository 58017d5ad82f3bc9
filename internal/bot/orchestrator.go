package bot

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"CryptoBot/internal/llm"
	"CryptoBot/internal/market"
	"CryptoBot/internal/model"
	"CryptoBot/internal/prompt"
	"CryptoBot/internal/recorder"
	"CryptoBot/internal/session"
)

// Orchestrator runs the question → context → prompt → completion → log
// pipeline for one session. Turns are single-flight: the mutex serializes
// the Telegram poller against the digest scheduler.
type Orchestrator struct {
	Fetcher  market.Fetcher
	Client   llm.Client
	Params   llm.Params
	Store    *session.Store
	Recorder recorder.Recorder
	Days     int

	mu sync.Mutex
}

// New creates an Orchestrator for a single session.
func New(fetcher market.Fetcher, client llm.Client, params llm.Params, store *session.Store, rec recorder.Recorder, days int) *Orchestrator {
	return &Orchestrator{
		Fetcher:  fetcher,
		Client:   client,
		Params:   params,
		Store:    store,
		Recorder: rec,
		Days:     days,
	}
}

// SetAutoPrompt stores a shortcut-selected question for the next turn.
func (o *Orchestrator) SetAutoPrompt(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Store.SetAutoPrompt(text)
}

// Messages returns the session's conversation log in order.
func (o *Orchestrator) Messages() []model.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.Store.Messages()
}

// SubmitTurn runs one full turn. A pending auto-prompt takes precedence
// over the typed input and is consumed exactly once, even when the turn
// fails. On a completion failure the user message is retained in the log,
// no assistant message is appended, and the error is returned alongside
// the updated log. A market-data failure is non-fatal: the turn proceeds
// with a fallback context sentence.
func (o *Orchestrator) SubmitTurn(typed string) ([]model.Message, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	question := typed
	if auto, ok := o.Store.TakeAutoPrompt(); ok {
		question = auto
	}
	if strings.TrimSpace(question) == "" {
		return o.Store.Messages(), nil
	}

	start := time.Now()
	contextText, latestPrice, fallback := o.buildContext()
	promptText := prompt.Assemble(contextText, question)

	answer, err := o.Client.Complete(promptText, o.Params)
	if err != nil {
		o.Store.Append(model.Message{Role: model.RoleUser, Content: question})
		o.recordTurn(&recorder.TurnEvent{
			Question:        question,
			Outcome:         recorder.OutcomeFailed,
			ContextFallback: fallback,
			LatestPrice:     latestPrice,
			DurationMillis:  time.Since(start).Milliseconds(),
		})
		return o.Store.Messages(), fmt.Errorf("completion: %w", err)
	}

	o.Store.Append(model.Message{Role: model.RoleUser, Content: question})
	o.Store.Append(model.Message{Role: model.RoleAssistant, Content: answer})
	o.recordTurn(&recorder.TurnEvent{
		Question:        question,
		Outcome:         recorder.OutcomeAnswered,
		ContextFallback: fallback,
		AnswerChars:     len(answer),
		LatestPrice:     latestPrice,
		DurationMillis:  time.Since(start).Milliseconds(),
	})
	return o.Store.Messages(), nil
}

// buildContext fetches and formats the price table, downgrading a market
// data failure to the fixed fallback sentence.
func (o *Orchestrator) buildContext() (text string, latestPrice float64, fallback bool) {
	points, err := o.Fetcher.FetchMarketChart(o.Days)
	if err != nil {
		log.Printf("[WARN] market chart fetch failed, using fallback context: %v", err)
		return prompt.FallbackContext, 0, true
	}
	if len(points) > 0 {
		latestPrice = points[len(points)-1].Price
	}
	return prompt.FormatPriceTable(points), latestPrice, false
}

// SpotSentence returns the single-value spot price context sentence,
// falling back to the fixed unavailability sentence on fetch failure.
func (o *Orchestrator) SpotSentence() string {
	price, err := o.Fetcher.FetchSpotPrice()
	if err != nil {
		log.Printf("[WARN] spot price fetch failed: %v", err)
		return prompt.FallbackSpot
	}
	if err := o.Recorder.RecordSpot(&recorder.SpotEvent{Price: price, Source: o.Fetcher.Name()}); err != nil {
		log.Printf("[ERROR] record spot: %v", err)
	}
	return prompt.FormatSpotSentence(price)
}

// PriceTable fetches and formats the current price table. Used by the
// digest scheduler; unlike a turn, a failure here is surfaced as an error.
func (o *Orchestrator) PriceTable() (string, error) {
	points, err := o.Fetcher.FetchMarketChart(o.Days)
	if err != nil {
		return "", fmt.Errorf("market chart: %w", err)
	}
	return prompt.FormatPriceTable(points), nil
}

func (o *Orchestrator) recordTurn(evt *recorder.TurnEvent) {
	if err := o.Recorder.RecordTurn(evt); err != nil {
		log.Printf("[ERROR] record turn: %v", err)
	}
}
