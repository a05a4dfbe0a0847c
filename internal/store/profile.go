package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/etudelab/etude/internal/mastery"
	"github.com/etudelab/etude/internal/profile"
)

// ProfileRepo stores learner profiles as JSON snapshots. Every save writes
// a new row; Latest reads the most recent one, so history is preserved
// until pruned.
type ProfileRepo struct {
	db *sqlx.DB
}

type profileRow struct {
	ID        int64     `db:"id"`
	Sequence  int64     `db:"sequence"`
	CreatedAt time.Time `db:"created_at"`
	Data      string    `db:"data"`
}

// Save persists a new profile snapshot tagged with the event sequence it
// reflects.
func (r *ProfileRepo) Save(ctx context.Context, prof *profile.Profile, sequence int64, now time.Time) error {
	data, err := json.Marshal(prof)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profile_snapshots (sequence, created_at, data) VALUES (?, ?, ?)`,
		sequence, now.UTC(), string(data))
	if err != nil {
		return fmt.Errorf("save profile snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent profile snapshot and its sequence, or
// (nil, 0, nil) when no snapshot exists yet.
func (r *ProfileRepo) Latest(ctx context.Context) (*profile.Profile, int64, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, sequence, created_at, data FROM profile_snapshots ORDER BY id DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("query latest profile: %w", err)
	}

	var prof profile.Profile
	if err := json.Unmarshal([]byte(row.Data), &prof); err != nil {
		return nil, 0, fmt.Errorf("unmarshal profile: %w", err)
	}
	if prof.MasteredSkills == nil {
		prof.MasteredSkills = make(map[string]bool)
	}
	if prof.SkillMasteryData == nil {
		prof.SkillMasteryData = make(map[string]mastery.SkillRecord)
	}
	return &prof, row.Sequence, nil
}

// Prune deletes all but the N most recent snapshots.
func (r *ProfileRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM profile_snapshots WHERE id NOT IN (
			SELECT id FROM profile_snapshots ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune profile snapshots: %w", err)
	}
	return nil
}
