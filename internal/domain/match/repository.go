package match

import (
	"context"

	"github.com/lucasveiga/palpiteiro/internal/domain/standings"
)

// Repository persists parse documents keyed by match ID.
type Repository interface {
	SaveDocument(ctx context.Context, doc *Document) error
	GetStatistics(ctx context.Context, matchID string) (*Statistics, error)
	GetMatch(ctx context.Context, matchID string) (*Match, error)
	ListMatches(ctx context.Context) ([]Match, error)
	ListStandings(ctx context.Context) ([]standings.Row, error)
}
