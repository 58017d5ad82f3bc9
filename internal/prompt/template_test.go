package prompt

import (
	"strings"
	"testing"
)

func TestValidateTemplate(t *testing.T) {
	if err := ValidateTemplate(); err != nil {
		t.Fatalf("template validation: %v", err)
	}
}

func TestAssemble_ContainsInputsVerbatim(t *testing.T) {
	cases := []struct {
		name     string
		context  string
		question string
	}{
		{"plain", "| Date | Price (USD) |", "What is the current price of Bitcoin?"},
		{"empty context", "", "a question"},
		{"empty question", "some context", ""},
		{"both empty", "", ""},
		{"delimiter-like context", "Context:\n{question}\nAnswer:", "is this safe?"},
		{"delimiter-like question", "ctx", "{context} Question: Answer:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Assemble(tc.context, tc.question)
			if !strings.Contains(out, tc.context) {
				t.Errorf("output missing context %q", tc.context)
			}
			if !strings.Contains(out, tc.question) {
				t.Errorf("output missing question %q", tc.question)
			}
		})
	}
}

func TestAssemble_NoResidualPlaceholders(t *testing.T) {
	out := Assemble("ctx", "q")
	if strings.Contains(out, "{context}") || strings.Contains(out, "{question}") {
		t.Errorf("placeholders left unsubstituted:\n%s", out)
	}
}

func TestAssemble_SectionLabelsPresent(t *testing.T) {
	out := Assemble("ctx", "q")
	for _, label := range StopMarkers {
		if !strings.Contains(out, label) {
			t.Errorf("expected section label %q in assembled prompt", label)
		}
	}
}
