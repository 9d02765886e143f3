package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/marketmood/moodscope/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// Slots is the fixed capacity of the rotating day-slot window
const Slots = 7

// ErrSlotNotFound signals a slot that has never been written.
// It is a valid "no data yet" state, not a failure.
var ErrSlotNotFound = errors.New("slot not found")

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DaySlotStore keeps the trailing week of analysis results in a fixed
// 7-slot rotating window. Writing a slot atomically replaces its prior
// contents; readers never observe a half-written slot.
type DaySlotStore struct {
	db *sqlx.DB
}

// New opens the database, applies pragmas, and initializes the schema
func New(ctx context.Context, cfg Config) (*DaySlotStore, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:moodscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return nil, fmt.Errorf("execute schema: %w", err)
	}

	return &DaySlotStore{db: db}, nil
}

// Close closes the database connection
func (s *DaySlotStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection
func (s *DaySlotStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Put atomically replaces the slot's contents with the given articles and
// summary. The write happens in a single statement inside a transaction,
// so a concurrent reader sees either the old row or the new one.
func (s *DaySlotStore) Put(ctx context.Context, slot int, articles []domain.AnalyzedArticle, summary *domain.DaySummary) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if summary == nil {
		return fmt.Errorf("nil summary for slot %d", slot)
	}

	row := &slotSQL{
		Slot:         slot,
		Timestamp:    summary.Timestamp,
		OverallScore: summary.OverallSentimentScore,
		OverallLabel: string(summary.OverallSentimentLabel),
		Counts:       countsSQL(summary.SentimentCounts),
		Articles:     articlesSQL(articles),
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin put slot %d: %w", slot, err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		query := `
			INSERT OR REPLACE INTO day_slots (
				slot, ts, overall_score, overall_label, sentiment_counts, articles, updated_at
			) VALUES (
				:slot, :ts, :overall_score, :overall_label, :sentiment_counts, :articles, datetime('now')
			)
		`
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("put slot %d: %w", slot, err)}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit slot %d: %w", slot, err)}
		}
		return nil
	})
}

// Get returns the slot's articles and summary, or ErrSlotNotFound for a
// never-written slot
func (s *DaySlotStore) Get(ctx context.Context, slot int) ([]domain.AnalyzedArticle, *domain.DaySummary, error) {
	if err := checkSlot(slot); err != nil {
		return nil, nil, err
	}

	var row slotSQL
	err := s.db.GetContext(ctx, &row,
		`SELECT slot, ts, overall_score, overall_label, sentiment_counts, articles, updated_at
		 FROM day_slots WHERE slot = ?`, slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get slot %d: %w", slot, err)
	}

	return []domain.AnalyzedArticle(row.Articles), row.toSummary(), nil
}

// ListRecent returns up to min(n, 7) day summaries, most recent first.
// Order follows the summary timestamp, not the slot index, because the
// slot index wraps as the window rotates.
func (s *DaySlotStore) ListRecent(ctx context.Context, n int) ([]domain.DaySummary, error) {
	if n <= 0 || n > Slots {
		n = Slots
	}

	var rows []slotSQL
	err := s.db.SelectContext(ctx, &rows,
		`SELECT slot, ts, overall_score, overall_label, sentiment_counts, articles, updated_at
		 FROM day_slots ORDER BY ts DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("list recent summaries: %w", err)
	}

	summaries := make([]domain.DaySummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, *rows[i].toSummary())
	}
	return summaries, nil
}

// Latest returns the contents of the most recently dated slot, deriving
// "today" from the max summary timestamp rather than a fixed slot index
func (s *DaySlotStore) Latest(ctx context.Context) ([]domain.AnalyzedArticle, *domain.DaySummary, error) {
	var row slotSQL
	err := s.db.GetContext(ctx, &row,
		`SELECT slot, ts, overall_score, overall_label, sentiment_counts, articles, updated_at
		 FROM day_slots ORDER BY ts DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get latest slot: %w", err)
	}

	return []domain.AnalyzedArticle(row.Articles), row.toSummary(), nil
}

// checkSlot validates the slot index range
func checkSlot(slot int) error {
	if slot < 0 || slot >= Slots {
		return fmt.Errorf("slot index %d out of range [0,%d]", slot, Slots-1)
	}
	return nil
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
