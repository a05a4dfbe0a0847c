package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/etudelab/etude/internal/llm"
)

// EventLog appends and queries practice history. Every event, regardless
// of type, gets a number from a single monotonic sequence so cross-type
// ordering is well defined (did mastery land before or after that practice
// attempt?). Per-table autoincrement IDs cannot give that guarantee.
type EventLog struct {
	db *sqlx.DB

	// Serializes sequence allocation within the process; the RETURNING
	// update makes it atomic at the database level.
	seqMu sync.Mutex
}

func (l *EventLog) nextSequence(ctx context.Context) (int64, error) {
	l.seqMu.Lock()
	defer l.seqMu.Unlock()

	var seq int64
	err := l.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// LastSequence returns the highest sequence number handed out so far.
func (l *EventLog) LastSequence(ctx context.Context) (int64, error) {
	var next int64
	err := l.db.GetContext(ctx, &next, `SELECT next_val FROM global_sequence WHERE id = 1`)
	if err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	return next - 1, nil
}

// PracticeEvent records one exercise attempt.
type PracticeEvent struct {
	Sequence   int64     `db:"sequence"`
	CreatedAt  time.Time `db:"created_at"`
	SessionID  string    `db:"session_id"`
	SkillID    string    `db:"skill_id"`
	ExerciseID string    `db:"exercise_id"`
	Source     string    `db:"source"`
	Passed     bool      `db:"passed"`
}

// AppendPractice records an exercise attempt and returns its sequence.
func (l *EventLog) AppendPractice(ctx context.Context, ev PracticeEvent) (int64, error) {
	seq, err := l.nextSequence(ctx)
	if err != nil {
		return 0, err
	}

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO practice_events (sequence, created_at, session_id, skill_id, exercise_id, source, passed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seq, ev.CreatedAt.UTC(), ev.SessionID, ev.SkillID, ev.ExerciseID, ev.Source, ev.Passed)
	if err != nil {
		return 0, fmt.Errorf("save practice event: %w", err)
	}
	return seq, nil
}

// MasteryEvent records a skill promotion.
type MasteryEvent struct {
	Sequence  int64     `db:"sequence"`
	CreatedAt time.Time `db:"created_at"`
	SkillID   string    `db:"skill_id"`
	SkillName string    `db:"skill_name"`
}

// AppendMastery records a skill promotion and returns its sequence.
func (l *EventLog) AppendMastery(ctx context.Context, ev MasteryEvent) (int64, error) {
	seq, err := l.nextSequence(ctx)
	if err != nil {
		return 0, err
	}

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO mastery_events (sequence, created_at, skill_id, skill_name) VALUES (?, ?, ?, ?)`,
		seq, ev.CreatedAt.UTC(), ev.SkillID, ev.SkillName)
	if err != nil {
		return 0, fmt.Errorf("save mastery event: %w", err)
	}
	return seq, nil
}

// RecordLLMRequest implements llm.RequestRecorder. Request and response
// bodies are deliberately not persisted; only the metadata needed for the
// stats command is kept.
func (l *EventLog) RecordLLMRequest(ctx context.Context, rec llm.RequestRecord) error {
	seq, err := l.nextSequence(ctx)
	if err != nil {
		return err
	}

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
		 (sequence, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().UTC(), rec.Provider, rec.Model, rec.Purpose,
		rec.InputTokens, rec.OutputTokens, rec.LatencyMs, rec.Success, rec.ErrorMessage)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

// RecentPractice returns the most recent practice events, newest first.
func (l *EventLog) RecentPractice(ctx context.Context, limit int) ([]PracticeEvent, error) {
	var events []PracticeEvent
	err := l.db.SelectContext(ctx, &events,
		`SELECT sequence, created_at, session_id, skill_id, exercise_id, source, passed
		 FROM practice_events ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query practice events: %w", err)
	}
	return events, nil
}

// PracticeDays returns the distinct calendar days with at least one
// practice attempt, newest first, in YYYY-MM-DD form. The days are derived
// in Go: the driver's stored time format is not parseable by SQLite's date
// functions, so date() in SQL would yield NULL for every row.
func (l *EventLog) PracticeDays(ctx context.Context) ([]string, error) {
	var stamps []time.Time
	err := l.db.SelectContext(ctx, &stamps, `SELECT created_at FROM practice_events`)
	if err != nil {
		return nil, fmt.Errorf("query practice days: %w", err)
	}

	seen := make(map[string]bool, len(stamps))
	days := make([]string, 0, len(stamps))
	for _, ts := range stamps {
		day := ts.Format("2006-01-02")
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days, nil
}

// MasteryHistory returns all mastery events, oldest first.
func (l *EventLog) MasteryHistory(ctx context.Context) ([]MasteryEvent, error) {
	var events []MasteryEvent
	err := l.db.SelectContext(ctx, &events,
		`SELECT sequence, created_at, skill_id, skill_name FROM mastery_events ORDER BY sequence ASC`)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}
	return events, nil
}

// PracticeStats summarizes attempt counts for the stats command.
type PracticeStats struct {
	Total  int `db:"total"`
	Passed int `db:"passed"`
}

// PracticeTotals returns overall attempt counts.
func (l *EventLog) PracticeTotals(ctx context.Context) (PracticeStats, error) {
	var stats PracticeStats
	err := l.db.GetContext(ctx, &stats,
		`SELECT COUNT(*) AS total, COALESCE(SUM(passed), 0) AS passed FROM practice_events`)
	if err != nil {
		return PracticeStats{}, fmt.Errorf("query practice totals: %w", err)
	}
	return stats, nil
}

// LLMModelUsage aggregates LLM spend per model.
type LLMModelUsage struct {
	Model        string `db:"model"`
	Requests     int    `db:"requests"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// LLMUsage returns per-model request and token totals for successful
// requests, largest first.
func (l *EventLog) LLMUsage(ctx context.Context) ([]LLMModelUsage, error) {
	var usage []LLMModelUsage
	err := l.db.SelectContext(ctx, &usage,
		`SELECT model, COUNT(*) AS requests,
		        COALESCE(SUM(input_tokens), 0) AS input_tokens,
		        COALESCE(SUM(output_tokens), 0) AS output_tokens
		 FROM llm_request_events WHERE success = 1
		 GROUP BY model ORDER BY requests DESC`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	return usage, nil
}
