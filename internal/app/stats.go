package app

import (
	"context"
	"time"

	"github.com/etudelab/etude/internal/llm"
	"github.com/etudelab/etude/internal/mastery"
	"github.com/etudelab/etude/internal/skillgraph"
	"github.com/etudelab/etude/internal/store"
)

// Stats aggregates everything the stats command prints.
type Stats struct {
	SkillsMastered int
	SkillsTotal    int
	SkillsDecayed  int
	Attempts       store.PracticeStats
	StreakDays     int
	Mastery        []store.MasteryEvent
	LLMUsage       []store.LLMModelUsage
	LLMCostUSD     float64
}

// CollectStats assembles progress and usage statistics.
func (s *Service) CollectStats(ctx context.Context, now time.Time) (*Stats, error) {
	prof, err := s.LoadProfile(ctx)
	if err != nil {
		return nil, err
	}

	log := s.store.Events()

	attempts, err := log.PracticeTotals(ctx)
	if err != nil {
		return nil, err
	}
	days, err := log.PracticeDays(ctx)
	if err != nil {
		return nil, err
	}
	history, err := log.MasteryHistory(ctx)
	if err != nil {
		return nil, err
	}
	usage, err := log.LLMUsage(ctx)
	if err != nil {
		return nil, err
	}

	var cost float64
	for _, u := range usage {
		if c := llm.LookupCost(u.Model); c != nil {
			cost += c.Cost(u.InputTokens, u.OutputTokens)
		}
	}

	return &Stats{
		SkillsMastered: len(prof.MasteredSkills),
		SkillsTotal:    len(skillgraph.AllSkills()),
		SkillsDecayed:  mastery.CountDecayed(prof.MasteredSkills, prof.SkillMasteryData, now),
		Attempts:       attempts,
		StreakDays:     streakDays(days, now),
		Mastery:        history,
		LLMUsage:       usage,
		LLMCostUSD:     cost,
	}, nil
}

// ResetAll wipes all persisted learner state.
func (s *Service) ResetAll() error {
	return s.store.Reset()
}
