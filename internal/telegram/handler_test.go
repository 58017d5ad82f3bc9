package telegram

import (
	"fmt"
	"testing"

	"CryptoBot/internal/model"
)

type fakeConversation struct {
	autoPrompt   string
	autoSet      bool
	lastTyped    string
	submitCalled bool
	reply        string
	err          error
	log          []model.Message
}

func (f *fakeConversation) SetAutoPrompt(text string) {
	f.autoPrompt = text
	f.autoSet = true
}

func (f *fakeConversation) SubmitTurn(typed string) ([]model.Message, error) {
	f.submitCalled = true
	f.lastTyped = typed
	question := typed
	if f.autoSet {
		question = f.autoPrompt
		f.autoSet = false
	}
	if f.err != nil {
		f.log = append(f.log, model.Message{Role: model.RoleUser, Content: question})
		return f.log, f.err
	}
	f.log = append(f.log,
		model.Message{Role: model.RoleUser, Content: question},
		model.Message{Role: model.RoleAssistant, Content: f.reply},
	)
	return f.log, nil
}

func (f *fakeConversation) SpotSentence() string {
	return "The current price of Bitcoin is $42,000.00 USD."
}

func TestHandleMessage_TypedQuestion(t *testing.T) {
	conv := &fakeConversation{reply: "an answer"}
	fe := NewFrontend(conv, NewNotifier("token", "1", ""))

	got := fe.HandleMessage("why is bitcoin volatile?")
	if got != "an answer" {
		t.Errorf("expected assistant reply, got %q", got)
	}
	if conv.lastTyped != "why is bitcoin volatile?" {
		t.Errorf("expected typed question passed through, got %q", conv.lastTyped)
	}
	if conv.autoSet {
		t.Error("typed question must not set the auto prompt")
	}
}

func TestHandleMessage_SamplePromptRoutesThroughAutoSlot(t *testing.T) {
	conv := &fakeConversation{reply: "joke"}
	fe := NewFrontend(conv, NewNotifier("token", "1", ""))

	got := fe.HandleMessage("Tell me a joke about Bitcoin's price?")
	if got != "joke" {
		t.Errorf("expected reply, got %q", got)
	}
	if conv.autoPrompt != "Tell me a joke about Bitcoin's price?" {
		t.Errorf("expected auto prompt set, got %q", conv.autoPrompt)
	}
	if conv.lastTyped != "" {
		t.Errorf("expected empty typed input for a sample selection, got %q", conv.lastTyped)
	}
}

func TestHandleMessage_UpstreamErrorRendered(t *testing.T) {
	conv := &fakeConversation{err: fmt.Errorf("completion: upstream down")}
	fe := NewFrontend(conv, NewNotifier("token", "1", ""))

	got := fe.HandleMessage("a question")
	if got != errorReply {
		t.Errorf("expected error reply, got %q", got)
	}
}

func TestHandleMessage_PriceCommand(t *testing.T) {
	conv := &fakeConversation{}
	fe := NewFrontend(conv, NewNotifier("token", "1", ""))

	got := fe.HandleMessage("/price")
	if got != "The current price of Bitcoin is $42,000.00 USD." {
		t.Errorf("unexpected /price reply: %q", got)
	}
	if conv.submitCalled {
		t.Error("/price must not start a turn")
	}
}
