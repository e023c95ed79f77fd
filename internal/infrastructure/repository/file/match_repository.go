// Package file persists parse documents as a single flat JSON file,
// the same shape the HTTP surface serves. Suited to single-process
// deployments where a database is overkill.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	sonic "github.com/bytedance/sonic"

	"github.com/lucasveiga/palpiteiro/internal/domain/match"
	"github.com/lucasveiga/palpiteiro/internal/domain/standings"
)

type MatchRepository struct {
	path string

	mu  sync.RWMutex
	doc *match.Document
}

// NewMatchRepository loads the document at path, or starts empty when
// the file does not exist yet.
func NewMatchRepository(path string) (*MatchRepository, error) {
	repo := &MatchRepository{path: path, doc: match.NewDocument()}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document file: %w", err)
	}
	if err := sonic.Unmarshal(raw, repo.doc); err != nil {
		return nil, fmt.Errorf("decode document file %s: %w", path, err)
	}
	if repo.doc.Statistics == nil {
		repo.doc.Statistics = map[string]match.Statistics{}
	}
	return repo, nil
}

func (r *MatchRepository) SaveDocument(_ context.Context, doc *match.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := map[string]int{}
	for i, game := range r.doc.Matches {
		existing[game.ID] = i
	}
	for _, game := range doc.Matches {
		if i, ok := existing[game.ID]; ok {
			r.doc.Matches[i] = game
			continue
		}
		r.doc.Matches = append(r.doc.Matches, game)
	}
	for id, stats := range doc.Statistics {
		r.doc.Statistics[id] = stats
	}
	if len(doc.Standings) > 0 {
		r.doc.Standings = doc.Standings
	}

	return r.persistLocked()
}

func (r *MatchRepository) GetMatch(_ context.Context, matchID string) (*match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, game := range r.doc.Matches {
		if game.ID == matchID {
			out := game
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MatchRepository) GetStatistics(_ context.Context, matchID string) (*match.Statistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, ok := r.doc.Statistics[matchID]
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

func (r *MatchRepository) ListMatches(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, len(r.doc.Matches))
	copy(out, r.doc.Matches)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MatchRepository) ListStandings(_ context.Context) ([]standings.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]standings.Row(nil), r.doc.Standings...), nil
}

// persistLocked writes the document through a temp file in the same
// directory so readers never observe a half-written file.
func (r *MatchRepository) persistLocked() error {
	raw, err := sonic.ConfigDefault.MarshalIndent(r.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp document file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp document file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp document file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace document file: %w", err)
	}
	return nil
}
