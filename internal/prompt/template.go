package prompt

import (
	"fmt"
	"strings"
)

// Placeholders that must appear exactly once each in the instruction template.
const (
	placeholderContext  = "{context}"
	placeholderQuestion = "{question}"
)

// answerTemplate is the fixed instruction template sent to the model.
// It is not user-modifiable at runtime.
const answerTemplate = `You are an intelligent crypto assistant. Use the context to answer the question.

Answer only the question you are given. Do not invent a different question or answer one that was not asked.
Rely on the context below for current prices and factual market data.
You may reason about trends and offer informed speculation, making clear it carries no guarantees.
You may perform arithmetic and unit conversions when the question calls for them.
Humor and a creative tone are fine when the question asks for them.

Context:
{context}

Question:
{question}

Answer:
`

// StopMarkers are the template's section labels, supplied to the model as
// stop sequences so a completion does not run past the answer section.
var StopMarkers = []string{"Context:", "Question:", "Answer:"}

// ValidateTemplate checks at startup that the instruction template carries
// both substitution points.
func ValidateTemplate() error {
	if !strings.Contains(answerTemplate, placeholderContext) {
		return fmt.Errorf("template missing %s placeholder", placeholderContext)
	}
	if !strings.Contains(answerTemplate, placeholderQuestion) {
		return fmt.Errorf("template missing %s placeholder", placeholderQuestion)
	}
	return nil
}

// Assemble interpolates the context and question into the instruction
// template. Inputs are inserted verbatim; the single-pass replacer never
// re-scans substituted text, so delimiter-like input cannot alter the
// template structure.
func Assemble(context, question string) string {
	r := strings.NewReplacer(
		placeholderContext, context,
		placeholderQuestion, question,
	)
	return r.Replace(answerTemplate)
}
