package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testParams() Params {
	return Params{
		Model:       "mistralai/mistral-7b-instruct",
		Temperature: 0.3,
		MaxTokens:   512,
		Stop:        []string{"Context:", "Question:", "Answer:"},
	}
}

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "mistralai/mistral-7b-instruct" {
			t.Errorf("unexpected model: %q", req.Model)
		}
		if req.Temperature != 0.3 {
			t.Errorf("unexpected temperature: %v", req.Temperature)
		}
		if req.MaxTokens != 512 {
			t.Errorf("unexpected max tokens: %d", req.MaxTokens)
		}
		if len(req.Stop) != 3 {
			t.Errorf("expected 3 stop markers, got %v", req.Stop)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("expected single user message, got %+v", req.Messages)
		}

		fmt.Fprint(w, `{"choices":[{"message":{"content":"  The price is $42,000.  "}}]}`)
	}))
	defer srv.Close()

	c := NewOpenRouterClient(srv.URL, "test-key", "")
	got, err := c.Complete("prompt text", testParams())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "The price is $42,000." {
		t.Errorf("expected trimmed content, got %q", got)
	}
}

func TestComplete_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewOpenRouterClient(srv.URL, "bad-key", "")
	_, err := c.Complete("prompt", testParams())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	c := NewOpenRouterClient(srv.URL, "key", "")
	_, err := c.Complete("prompt", testParams())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestComplete_WhitespaceOnlyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"   \n  "}}]}`)
	}))
	defer srv.Close()

	c := NewOpenRouterClient(srv.URL, "key", "")
	_, err := c.Complete("prompt", testParams())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream for empty completion, got %v", err)
	}
}

func TestComplete_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<!doctype html><html>gateway error</html>`)
	}))
	defer srv.Close()

	c := NewOpenRouterClient(srv.URL, "key", "")
	_, err := c.Complete("prompt", testParams())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestComplete_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewOpenRouterClient(srv.URL, "key", "")
	_, err := c.Complete("prompt", testParams())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
