package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists turn and spot-price history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the bot's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS turns (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			question         TEXT,
			outcome          TEXT,
			context_fallback INTEGER,
			answer_chars     INTEGER,
			latest_price     REAL,
			duration_ms      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_ts ON turns(timestamp)`,

		`CREATE TABLE IF NOT EXISTS spot_prices (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			price     REAL,
			source    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_spot_ts ON spot_prices(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTurn(evt *TurnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fallback := 0
	if evt.ContextFallback {
		fallback = 1
	}
	_, err := r.db.Exec(`INSERT INTO turns
		(timestamp, question, outcome, context_fallback, answer_chars, latest_price, duration_ms)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Question, evt.Outcome, fallback,
		evt.AnswerChars, evt.LatestPrice, evt.DurationMillis,
	)
	return err
}

func (r *SQLiteRecorder) RecordSpot(evt *SpotEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO spot_prices (timestamp, price, source) VALUES (?,?,?)`,
		time.Now().Unix(), evt.Price, evt.Source,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
