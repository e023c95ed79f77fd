package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/lucasveiga/palpiteiro/internal/domain/match"
)

const defaultCollectWorkers = 4

const (
	collectStatusSuccess = "success"
	collectStatusSkipped = "skipped"
	collectStatusFailed  = "failed"
)

// PageSource fetches listing and per-match pages from the statistics
// site, reduced to plain text ready for the parser.
type PageSource interface {
	FetchDailyListing(ctx context.Context) (string, error)
	FetchMatchPage(ctx context.Context, homeTeam, awayTeam string) (string, error)
}

type CollectInput struct {
	MaxWorkers int
	// DryRun parses everything but skips persistence.
	DryRun bool
}

type CollectResult struct {
	MatchCount   int                 `json:"match_count"`
	SuccessCount int                 `json:"success_count"`
	SkippedCount int                 `json:"skipped_count"`
	FailedCount  int                 `json:"failed_count"`
	WorkerCount  int                 `json:"worker_count"`
	Tasks        []CollectTaskResult `json:"tasks"`
}

type CollectTaskResult struct {
	MatchID    string `json:"match_id"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// CollectService pulls the day's listing, fans out per-match page
// fetches over a worker pool, and stores every parsed document.
type CollectService struct {
	source    PageSource
	reports   *ReportService
	matchRepo match.Repository
}

func NewCollectService(source PageSource, reports *ReportService, matchRepo match.Repository) *CollectService {
	return &CollectService{
		source:    source,
		reports:   reports,
		matchRepo: matchRepo,
	}
}

func (s *CollectService) CollectDaily(ctx context.Context, input CollectInput) (CollectResult, error) {
	ctx, span := startUsecaseSpan(ctx, "CollectService.CollectDaily")
	defer span.End()

	listing, err := s.source.FetchDailyListing(ctx)
	if err != nil {
		return CollectResult{}, fmt.Errorf("%w: fetch daily listing: %v", ErrDependencyUnavailable, err)
	}

	parsed, err := s.reports.Parse(ctx, listing)
	if err != nil {
		return CollectResult{}, fmt.Errorf("parse daily listing: %w", err)
	}

	matches := parsed.Document.Matches
	result := CollectResult{MatchCount: len(matches)}
	if len(matches) == 0 {
		return result, nil
	}

	workerCount := input.MaxWorkers
	if workerCount < 1 {
		workerCount = defaultCollectWorkers
	}
	if workerCount > len(matches) {
		workerCount = len(matches)
	}
	result.WorkerCount = workerCount

	rows := make(chan CollectTaskResult, len(matches))

	var successCount atomic.Int32
	var skippedCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return CollectResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, game := range matches {
		game := game
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := CollectTaskResult{
				MatchID:  game.ID,
				HomeTeam: game.HomeTeam,
				AwayTeam: game.AwayTeam,
			}

			status, message := s.collectMatch(ctx, game, input.DryRun)
			row.Status = status
			row.Message = message
			row.DurationMs = time.Since(start).Milliseconds()

			switch status {
			case collectStatusSuccess:
				successCount.Add(1)
			case collectStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return CollectResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].MatchID < result.Tasks[j].MatchID
	})

	result.SuccessCount = int(successCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	result.FailedCount = int(failedCount.Load())

	if !input.DryRun && len(matches) > 0 {
		if err := s.matchRepo.SaveDocument(ctx, parsed.Document); err != nil {
			return result, fmt.Errorf("save listing document: %w", err)
		}
	}

	return result, nil
}

func (s *CollectService) collectMatch(ctx context.Context, game match.Match, dryRun bool) (status, message string) {
	page, err := s.source.FetchMatchPage(ctx, game.HomeTeam, game.AwayTeam)
	if err != nil {
		return collectStatusFailed, fmt.Sprintf("fetch match page: %v", err)
	}

	if dryRun {
		if _, err := s.reports.Parse(ctx, page); err != nil {
			return collectStatusSkipped, fmt.Sprintf("parse match page: %v", err)
		}
		return collectStatusSuccess, ""
	}

	if _, err := s.reports.Ingest(ctx, page); err != nil {
		return collectStatusSkipped, fmt.Sprintf("ingest match page: %v", err)
	}
	return collectStatusSuccess, ""
}
