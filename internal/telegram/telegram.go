package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Notifier sends messages via the Telegram Bot API.
type Notifier struct {
	BotToken string
	ChatID   string
	Client   *http.Client
}

// NewNotifier creates a notifier with optional proxy support.
func NewNotifier(botToken, chatID, proxyURL string) *Notifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Notifier{
		BotToken: botToken,
		ChatID:   chatID,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Send sends a message to the configured chat.
func (t *Notifier) Send(text string) error {
	return t.send(map[string]any{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
}

// SendWithKeyboard sends a message together with a one-column reply keyboard,
// one button per entry.
func (t *Notifier) SendWithKeyboard(text string, buttons []string) error {
	keyboard := make([][]map[string]string, 0, len(buttons))
	for _, b := range buttons {
		keyboard = append(keyboard, []map[string]string{{"text": b}})
	}
	return t.send(map[string]any{
		"chat_id": t.ChatID,
		"text":    text,
		"reply_markup": map[string]any{
			"keyboard":        keyboard,
			"resize_keyboard": true,
		},
	})
}

func (t *Notifier) send(payload map[string]any) error {
	apiURL := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.BotToken)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := t.Client.Post(apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, respBody)
	}
	return nil
}

// SendWithRetry sends a message with exponential backoff retry.
func (t *Notifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if err := t.Send(text); err != nil {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.Printf("[WARN] Telegram send failed (attempt %d/%d): %v, retrying in %v", i+1, maxRetries+1, err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}
