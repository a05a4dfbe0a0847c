package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etudelab/etude/internal/llm"
	"github.com/etudelab/etude/internal/mastery"
	"github.com/etudelab/etude/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	repo := s.Profiles()

	prof, seq, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, prof, "empty store should have no profile")
	assert.Zero(t, seq)

	orig := profile.New()
	orig.MasteredSkills["nf-middle-c"] = true
	orig.SkillMasteryData["nf-middle-c"] = mastery.SkillRecord{
		MasteredAt: now, LastPracticedAt: now, CompletionCount: 2, DecayScore: 1.0,
	}
	orig.WeakNotes = []string{"F#4"}
	orig.TotalExercisesCompleted = 7

	require.NoError(t, repo.Save(ctx, orig, 42, now))

	got, seq, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)
	assert.True(t, got.MasteredSkills["nf-middle-c"], "mastered skill lost in round trip")
	assert.Equal(t, 7, got.TotalExercisesCompleted)
	assert.Equal(t, []string{"F#4"}, got.WeakNotes)

	rec := got.SkillMasteryData["nf-middle-c"]
	assert.Equal(t, 2, rec.CompletionCount)
	assert.True(t, rec.MasteredAt.Equal(now), "MasteredAt = %v, want %v", rec.MasteredAt, now)
}

func TestProfileLatestPicksNewest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	repo := s.Profiles()
	for i := 1; i <= 3; i++ {
		p := profile.New()
		p.TotalExercisesCompleted = i
		require.NoError(t, repo.Save(ctx, p, int64(i), now))
	}

	got, seq, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalExercisesCompleted)
	assert.Equal(t, int64(3), seq)

	require.NoError(t, repo.Prune(ctx, 1))
	var count int
	require.NoError(t, s.DB().Get(&count, `SELECT COUNT(*) FROM profile_snapshots`))
	assert.Equal(t, 1, count, "snapshots after prune")
}

func TestEventsReturnsSharedInstance(t *testing.T) {
	s := openTestStore(t)
	// The mutex guarding sequence allocation only serializes callers that
	// share the instance.
	assert.Same(t, s.Events(), s.Events())
}

func TestEventSequenceIsGlobal(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()
	log := s.Events()

	seq1, err := log.AppendPractice(ctx, PracticeEvent{
		CreatedAt: now, SessionID: "s1", SkillID: "nf-middle-c",
		ExerciseID: "nf-middle-c-01", Source: "static", Passed: true,
	})
	require.NoError(t, err)

	seq2, err := log.AppendMastery(ctx, MasteryEvent{
		CreatedAt: now, SkillID: "nf-middle-c", SkillName: "Finding Middle C",
	})
	require.NoError(t, err)

	require.NoError(t, log.RecordLLMRequest(ctx, llm.RequestRecord{
		Provider: "mock", Model: "mock", Purpose: "lesson",
		InputTokens: 100, OutputTokens: 50, Success: true,
	}))

	assert.Equal(t, seq1+1, seq2, "sequences must be consecutive across event types")

	last, err := log.LastSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, seq2+1, last)
}

func TestEventQueries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()
	log := s.Events()

	for i, passed := range []bool{true, false, true} {
		_, err := log.AppendPractice(ctx, PracticeEvent{
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
			SessionID: "s1", SkillID: "rh-quarter-notes",
			ExerciseID: "rh-quarter-notes-01", Source: "static", Passed: passed,
		})
		require.NoError(t, err)
	}

	recent, err := log.RecentPractice(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Greater(t, recent[0].Sequence, recent[1].Sequence, "recent practice must be newest first")

	totals, err := log.PracticeTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, PracticeStats{Total: 3, Passed: 2}, totals)
}

func TestPracticeDays(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	log := s.Events()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	// Two attempts on the same day, one the day before.
	for _, at := range []time.Time{base, base.Add(2 * time.Hour), base.AddDate(0, 0, -1)} {
		_, err := log.AppendPractice(ctx, PracticeEvent{
			CreatedAt: at, SessionID: "s1", SkillID: "nf-middle-c",
			ExerciseID: "nf-middle-c-01", Source: "static", Passed: true,
		})
		require.NoError(t, err)
	}

	days, err := log.PracticeDays(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-10", "2026-03-09"}, days)
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	log := s.Events()

	records := []llm.RequestRecord{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "lesson", InputTokens: 200, OutputTokens: 100, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "warm-up", InputTokens: 150, OutputTokens: 80, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "lesson", Success: false, ErrorMessage: "rate limited"},
	}
	for _, rec := range records {
		require.NoError(t, log.RecordLLMRequest(ctx, rec))
	}

	usage, err := log.LLMUsage(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 1, "failed requests must not create usage rows")
	assert.Equal(t, LLMModelUsage{
		Model: "claude-haiku-4-5-20251001", Requests: 2, InputTokens: 350, OutputTokens: 180,
	}, usage[0])
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	log := s.Events()

	_, err := log.AppendPractice(ctx, PracticeEvent{
		CreatedAt: time.Now(), SessionID: "s1", SkillID: "x", ExerciseID: "y", Source: "static",
	})
	require.NoError(t, err)
	require.NoError(t, s.Profiles().Save(ctx, profile.New(), 1, time.Now()))

	require.NoError(t, s.Reset())

	prof, _, err := s.Profiles().Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, prof, "profile survived reset")

	last, err := log.LastSequence(ctx)
	require.NoError(t, err)
	assert.Zero(t, last, "sequence must restart after reset")
}
