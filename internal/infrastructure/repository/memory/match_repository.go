// Package memory holds map-backed repositories used by tests and by
// deployments that run without external storage.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lucasveiga/palpiteiro/internal/domain/match"
	"github.com/lucasveiga/palpiteiro/internal/domain/standings"
)

type MatchRepository struct {
	mu         sync.RWMutex
	matches    map[string]match.Match
	statistics map[string]match.Statistics
	standings  []standings.Row
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		matches:    map[string]match.Match{},
		statistics: map[string]match.Statistics{},
	}
}

func (r *MatchRepository) SaveDocument(_ context.Context, doc *match.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, game := range doc.Matches {
		r.matches[game.ID] = game
	}
	for id, stats := range doc.Statistics {
		r.statistics[id] = stats
	}
	if len(doc.Standings) > 0 {
		r.standings = append([]standings.Row(nil), doc.Standings...)
	}
	return nil
}

func (r *MatchRepository) GetMatch(_ context.Context, matchID string) (*match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.matches[matchID]
	if !ok {
		return nil, nil
	}
	return &game, nil
}

func (r *MatchRepository) GetStatistics(_ context.Context, matchID string) (*match.Statistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, ok := r.statistics[matchID]
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

func (r *MatchRepository) ListMatches(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, game := range r.matches {
		out = append(out, game)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MatchRepository) ListStandings(_ context.Context) ([]standings.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]standings.Row(nil), r.standings...), nil
}
