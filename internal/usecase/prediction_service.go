package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasveiga/palpiteiro/internal/domain/match"
	"github.com/lucasveiga/palpiteiro/internal/domain/odds"
	"github.com/lucasveiga/palpiteiro/internal/domain/prediction"
)

// MatchPrediction bundles model output with the usable odds for one
// match.
type MatchPrediction struct {
	MatchID       string                   `json:"id_jogo"`
	Probabilities prediction.Probabilities `json:"probabilidades"`
	Suggestions   []prediction.Suggestion  `json:"palpites"`
	Odds          odds.Snapshot            `json:"odds"`
}

// PredictionService runs the goal model over stored match statistics.
type PredictionService struct {
	matchRepo match.Repository
}

func NewPredictionService(matchRepo match.Repository) *PredictionService {
	return &PredictionService{matchRepo: matchRepo}
}

// Suggest computes probabilities and betting suggestions for a stored
// match. Unextracted odds are replaced with fallback prices so the
// response always carries a usable quote.
func (s *PredictionService) Suggest(ctx context.Context, matchID string) (*MatchPrediction, error) {
	ctx, span := startUsecaseSpan(ctx, "PredictionService.Suggest")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	stats, err := s.matchRepo.GetStatistics(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	if stats == nil {
		return nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	homeScored, homeConceded := stats.Home.ScoringRates()
	awayScored, awayConceded := stats.Away.ScoringRates()

	probs := prediction.Estimate(
		prediction.TeamRates{GoalsScored: homeScored, GoalsConceded: homeConceded},
		prediction.TeamRates{GoalsScored: awayScored, GoalsConceded: awayConceded},
	)

	usableOdds := stats.Odds.WithFallbacks()

	return &MatchPrediction{
		MatchID:       matchID,
		Probabilities: probs,
		Suggestions:   prediction.SuggestWithOdds(probs, usableOdds),
		Odds:          usableOdds,
	}, nil
}
