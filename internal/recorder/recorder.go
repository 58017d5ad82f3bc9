package recorder

// Turn outcome values recorded per exchange.
const (
	OutcomeAnswered = "ANSWERED"
	OutcomeFailed   = "FAILED"
)

// TurnEvent holds per-turn metadata for analysis. Message content of the
// conversation itself is never reloaded from storage: the log lives only
// in memory for the session's lifetime.
type TurnEvent struct {
	Question        string
	Outcome         string // OutcomeAnswered or OutcomeFailed
	ContextFallback bool   // price table unavailable, fallback sentence used
	AnswerChars     int
	LatestPrice     float64
	DurationMillis  int64
}

// SpotEvent records a spot-price observation.
type SpotEvent struct {
	Price  float64
	Source string
}

// Recorder persists historical turn and price data for analysis.
type Recorder interface {
	RecordTurn(evt *TurnEvent) error
	RecordSpot(evt *SpotEvent) error
	Close() error
}
