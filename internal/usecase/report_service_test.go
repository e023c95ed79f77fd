package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucasveiga/palpiteiro/internal/infrastructure/repository/memory"
	"github.com/lucasveiga/palpiteiro/internal/textparse"
)

const reportText = `Quem será o vencedor?
Corinthians vs Sport
19/04/2025 - 16:00
Posição Time P J V E D
14 Corinthians 4 5 1 1 3 4:5
19 Sport 2 5 0 2 3 2:8
CONFRONTO DIRETO
2 jogos
09/10/2021 Sport 1-0 Corinthians
24/09/2021 Corinthians 2-1 Sport
Casa Empate Fora
1.5 3.9 7.5`

func testClock() time.Time {
	return time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)
}

func newReportService() (*ReportService, *memory.MatchRepository) {
	repo := memory.NewMatchRepository()
	svc := NewReportService(textparse.NewWithClock(testClock), repo)
	return svc, repo
}

func TestReportServiceParse(t *testing.T) {
	svc, _ := newReportService()

	result, err := svc.Parse(context.Background(), reportText)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Type != textparse.ContentMatchReport {
		t.Errorf("Type = %v, want match report", result.Type)
	}
	if len(result.Document.Matches) != 1 {
		t.Errorf("Matches = %d, want 1", len(result.Document.Matches))
	}
}

func TestReportServiceParseRejectsEmptyText(t *testing.T) {
	svc, _ := newReportService()

	if _, err := svc.Parse(context.Background(), "   \n "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestReportServiceParseRejectsUnrecognizedContent(t *testing.T) {
	svc, _ := newReportService()

	_, err := svc.Parse(context.Background(), "previsão do tempo para amanhã")
	if !errors.Is(err, ErrUnrecognizedContent) {
		t.Errorf("err = %v, want ErrUnrecognizedContent", err)
	}
}

func TestReportServiceIngestPersists(t *testing.T) {
	svc, _ := newReportService()
	ctx := context.Background()

	result, err := svc.Ingest(ctx, reportText)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	matchID := result.Document.Matches[0].ID

	stored, err := svc.GetMatch(ctx, matchID)
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if stored.HomeTeam != "Corinthians" {
		t.Errorf("HomeTeam = %q", stored.HomeTeam)
	}

	stats, err := svc.GetStatistics(ctx, matchID)
	if err != nil {
		t.Fatalf("GetStatistics: %v", err)
	}
	if stats.Home.Position != 14 {
		t.Errorf("home Position = %d, want 14", stats.Home.Position)
	}

	matches, err := svc.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("ListMatches = %d entries, want 1", len(matches))
	}
}

func TestReportServiceGetMatchNotFound(t *testing.T) {
	svc, _ := newReportService()

	if _, err := svc.GetMatch(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetStatistics(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
