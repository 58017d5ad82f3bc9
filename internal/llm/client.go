package llm

import "errors"

// ErrUpstream indicates the completion endpoint was unreachable, rejected
// the request, or returned an empty or malformed completion.
var ErrUpstream = errors.New("completion upstream error")

// Params carries the sampling parameters sent with every completion request.
type Params struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Stop        []string
}

// Client generates an answer for an assembled prompt. Implementations
// guarantee a non-empty result on success.
type Client interface {
	Complete(promptText string, params Params) (string, error)
	Name() string
}
