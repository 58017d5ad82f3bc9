package telegram

import (
	"log"

	"CryptoBot/internal/model"
)

// SamplePrompts are the pre-written shortcut questions offered as buttons.
var SamplePrompts = []string{
	"What is the current price of Bitcoin?",
	"Should I buy Bitcoin now or wait?",
	"Tell me a joke about Bitcoin's price?",
	"How much Bitcoin can I get for $1000?",
}

const greeting = "CryptoBot — ask anything about Bitcoin, or pick a sample question below."

const errorReply = "⚠️ The assistant is unavailable right now. Your question was kept; please try again."

// Conversation is the orchestrator surface the front end drives.
type Conversation interface {
	SetAutoPrompt(text string)
	SubmitTurn(typed string) ([]model.Message, error)
	SpotSentence() string
}

// Frontend routes incoming chat messages to the conversation pipeline.
type Frontend struct {
	Conv     Conversation
	Notifier *Notifier
}

// NewFrontend creates the chat front end.
func NewFrontend(conv Conversation, notifier *Notifier) *Frontend {
	return &Frontend{Conv: conv, Notifier: notifier}
}

// HandleMessage processes one incoming message and returns the reply text.
// Tapping a sample-prompt button arrives as a plain message matching the
// button label; those are routed through the auto-prompt slot, everything
// else is treated as a typed question.
func (f *Frontend) HandleMessage(text string) string {
	switch text {
	case "/start", "/help":
		if err := f.Notifier.SendWithKeyboard(greeting, SamplePrompts); err != nil {
			log.Printf("[ERROR] send greeting: %v", err)
		}
		return ""
	case "/price":
		return f.Conv.SpotSentence()
	}

	typed := text
	if isSamplePrompt(text) {
		f.Conv.SetAutoPrompt(text)
		typed = ""
	}

	msgs, err := f.Conv.SubmitTurn(typed)
	if err != nil {
		return errorReply
	}
	if len(msgs) == 0 {
		return ""
	}
	last := msgs[len(msgs)-1]
	if last.Role != model.RoleAssistant {
		return ""
	}
	return last.Content
}

func isSamplePrompt(text string) bool {
	for _, p := range SamplePrompts {
		if text == p {
			return true
		}
	}
	return false
}
