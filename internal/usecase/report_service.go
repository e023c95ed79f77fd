package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasveiga/palpiteiro/internal/domain/match"
	"github.com/lucasveiga/palpiteiro/internal/domain/standings"
	"github.com/lucasveiga/palpiteiro/internal/textparse"
)

// ReportService parses pasted match reports and persists the results.
type ReportService struct {
	parser    *textparse.Parser
	matchRepo match.Repository
}

func NewReportService(parser *textparse.Parser, matchRepo match.Repository) *ReportService {
	return &ReportService{
		parser:    parser,
		matchRepo: matchRepo,
	}
}

// Parse runs the text parser without persisting anything.
func (s *ReportService) Parse(ctx context.Context, text string) (*textparse.Result, error) {
	_, span := startUsecaseSpan(ctx, "ReportService.Parse")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	result := s.parser.Parse(text)
	if result.Type == textparse.ContentUnrecognized {
		return nil, fmt.Errorf("%w: no known page layout detected", ErrUnrecognizedContent)
	}

	return &result, nil
}

// Ingest parses the text and stores the resulting document.
func (s *ReportService) Ingest(ctx context.Context, text string) (*textparse.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.Ingest")
	defer span.End()

	result, err := s.Parse(ctx, text)
	if err != nil {
		return nil, err
	}

	if len(result.Document.Matches) > 0 || len(result.Document.Standings) > 0 {
		if err := s.matchRepo.SaveDocument(ctx, result.Document); err != nil {
			return nil, fmt.Errorf("save document: %w", err)
		}
	}

	return result, nil
}

// GetMatch returns a stored match by ID.
func (s *ReportService) GetMatch(ctx context.Context, matchID string) (*match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	game, err := s.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return game, nil
}

// GetStatistics returns the stored statistics for a match.
func (s *ReportService) GetStatistics(ctx context.Context, matchID string) (*match.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.GetStatistics")
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

	return stats, nil
}

// ListMatches returns every stored match.
func (s *ReportService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.ListMatches")
	defer span.End()

	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

// ListStandings returns the most recently stored league table.
func (s *ReportService) ListStandings(ctx context.Context) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.ListStandings")
	defer span.End()

	rows, err := s.matchRepo.ListStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	return rows, nil
}
