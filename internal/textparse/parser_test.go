package textparse

import (
	"strings"
	"testing"
	"time"

	"github.com/lucasveiga/palpiteiro/internal/domain/match"
	"github.com/lucasveiga/palpiteiro/internal/domain/teamstats"
)

const reportText = `BRASILEIRÃO SÉRIE A
Corinthians vs Sport
19/04/2025 - 16:00
Quem será o vencedor?
Casa Empate Fora
1.5 3.9 7.5

CLASSIFICAÇÕES NESTA COMPETIÇÃO
Posição Time P J V E D
14 Corinthians 4 5 1 1 3 4:5
19 Sport 2 5 0 2 3 2:8

Sequência de Derrotas 2

Média de gols marcados 0.8 0.4
Média de gols sofridos 1.0 1.6

CONFRONTO DIRETO
2 jogos
09/10/2021 Sport 1-0 Corinthians
24/09/2021 Corinthians 2-1 Sport

Mais/Menos de 2.5 gols 2.1 1.7
Ambas as equipas marcam 1.95 1.85

Média de escanteios 5.2 4.6
Média de cartões amarelos 2.8 3.1`

func fixedClock() time.Time {
	return time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)
}

func TestParseMatchReport(t *testing.T) {
	parser := NewWithClock(fixedClock)

	result := parser.Parse(reportText)

	if result.Type != ContentMatchReport {
		t.Fatalf("Type = %v, want match report", result.Type)
	}
	if len(result.Document.Matches) != 1 {
		t.Fatalf("Matches = %d, want 1", len(result.Document.Matches))
	}

	game := result.Document.Matches[0]
	if game.HomeTeam != "Corinthians" || game.AwayTeam != "Sport" {
		t.Errorf("teams = %q vs %q", game.HomeTeam, game.AwayTeam)
	}
	if game.Date != "19/04/2025" || game.Time != "16:00" {
		t.Errorf("kickoff = %q %q", game.Date, game.Time)
	}
	if game.Competition != "Brasileirão Série A" {
		t.Errorf("Competition = %q", game.Competition)
	}

	stats, ok := result.Document.Statistics[game.ID]
	if !ok {
		t.Fatalf("no statistics under %q", game.ID)
	}

	if stats.Home.Position != 14 {
		t.Errorf("home Position = %d, want 14", stats.Home.Position)
	}
	if stats.Home.Points != 4 {
		t.Errorf("home Points = %d, want 4", stats.Home.Points)
	}
	if stats.Home.GoalDiff != -1 {
		t.Errorf("home GoalDiff = %d, want -1", stats.Home.GoalDiff)
	}
	if stats.Home.WinRate != 26.7 {
		t.Errorf("home WinRate = %v, want 26.7", stats.Home.WinRate)
	}
	if stats.Away.Position != 19 || stats.Away.Points != 2 {
		t.Errorf("away stats = %+v", stats.Away)
	}

	if got := stats.Home.RecentForm; len(got) != 5 {
		t.Errorf("home RecentForm length = %d, want 5", len(got))
	} else if got[0] != "D" || got[1] != "D" || got[2] != "?" {
		t.Errorf("home RecentForm = %v", got)
	}
	if len(stats.Away.RecentForm) != 5 {
		t.Errorf("away RecentForm length = %d, want 5", len(stats.Away.RecentForm))
	}

	if stats.Odds.Result.Home != 1.5 || stats.Odds.Result.Draw != 3.9 || stats.Odds.Result.Away != 7.5 {
		t.Errorf("1X2 odds = %+v", stats.Odds.Result)
	}
	if stats.Odds.Goals.Over25 != 2.1 || stats.Odds.Goals.Under25 != 1.7 {
		t.Errorf("over/under odds = %+v", stats.Odds.Goals)
	}
	if stats.Odds.BothScore.Yes != 1.95 || stats.Odds.BothScore.No != 1.85 {
		t.Errorf("both-score odds = %+v", stats.Odds.BothScore)
	}

	h2h := stats.HeadToHead
	if h2h.Summary.Total != 2 || h2h.Summary.HomeWins != 1 || h2h.Summary.AwayWins != 1 || h2h.Summary.Draws != 0 {
		t.Errorf("head-to-head summary = %+v", h2h.Summary)
	}
	if len(h2h.Meetings) != 2 {
		t.Fatalf("Meetings = %d, want 2", len(h2h.Meetings))
	}
	if h2h.Meetings[0].Host != "Sport" || h2h.Meetings[0].Score != "1-0" {
		t.Errorf("first meeting = %+v", h2h.Meetings[0])
	}

	if stats.Additional.Corners.Home.PerGame != 5.2 || stats.Additional.Corners.Away.PerGame != 4.6 {
		t.Errorf("corner averages = %+v", stats.Additional.Corners)
	}
	if stats.Additional.Corners.Combined.PerGame != 4.9 {
		t.Errorf("combined corners = %v, want 4.9", stats.Additional.Corners.Combined.PerGame)
	}
	if stats.Additional.Cards.Combined.PerGame != 3.0 {
		t.Errorf("combined cards = %v, want 3.0", stats.Additional.Cards.Combined.PerGame)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	parser := NewWithClock(fixedClock)

	first := parser.Parse(reportText)
	for i := 0; i < 5; i++ {
		again := parser.Parse(reportText)
		if again.Document.Matches[0].ID != first.Document.Matches[0].ID {
			t.Fatalf("run %d: ID %q != %q", i, again.Document.Matches[0].ID, first.Document.Matches[0].ID)
		}
	}
}

func TestParseIgnoresFormattingNoise(t *testing.T) {
	parser := NewWithClock(fixedClock)

	noisy := strings.ReplaceAll(reportText, "\n", "\r\n\r\n")
	noisy = strings.ReplaceAll(noisy, " vs ", " \t vs \t ")

	clean := parser.Parse(reportText)
	dirty := parser.Parse(noisy)

	if clean.Document.Matches[0].ID != dirty.Document.Matches[0].ID {
		t.Errorf("IDs differ across formatting noise: %q vs %q",
			clean.Document.Matches[0].ID, dirty.Document.Matches[0].ID)
	}
}

func TestParsePreservesInconsistentHeadToHead(t *testing.T) {
	parser := NewWithClock(fixedClock)

	text := `Corinthians vs Sport
19/04/2025 - 16:00
CONFRONTO DIRETO
5 jogos
09/10/2021 Sport 1-0 Corinthians
24/09/2021 Corinthians 2-1 Sport`

	result := parser.Parse(text)
	stats := result.Document.Statistics[result.Document.Matches[0].ID]

	sum := stats.HeadToHead.Summary
	if sum.Total != 5 {
		t.Errorf("Total = %d, want the stated 5", sum.Total)
	}
	if sum.HomeWins+sum.Draws+sum.AwayWins != 2 {
		t.Errorf("tallied counts = %+v, want them left at 2", sum)
	}
	if sum.Consistent() {
		t.Error("summary reported consistent despite the mismatch")
	}
}

func TestParseMatchList(t *testing.T) {
	parser := NewWithClock(fixedClock)

	text := `FUTEBOL HOJE
Brasileirão Série A
Flamengo vs Palmeiras
20/04/2025 - 18:00
Santos vs Grêmio
20/04/2025 - 20:30
Bahia vs Fortaleza
21/04/2025 - 16:00
Cruzeiro vs Internacional
21/04/2025 - 18:30
Botafogo vs Vasco
21/04/2025 - 20:00`

	result := parser.Parse(text)

	if result.Type != ContentMatchList {
		t.Fatalf("Type = %v, want match list", result.Type)
	}
	if len(result.Document.Matches) != 5 {
		t.Fatalf("Matches = %d, want 5", len(result.Document.Matches))
	}
	if len(result.Document.Statistics) != 0 {
		t.Errorf("list parse produced statistics: %v", result.Document.Statistics)
	}

	first := result.Document.Matches[0]
	if first.HomeTeam != "Flamengo" || first.AwayTeam != "Palmeiras" {
		t.Errorf("first pair = %q vs %q", first.HomeTeam, first.AwayTeam)
	}
	if first.Date != "20/04/2025" || first.Time != "18:00" {
		t.Errorf("first kickoff = %q %q", first.Date, first.Time)
	}
	if first.Competition != "Brasileirão Série A" {
		t.Errorf("first Competition = %q", first.Competition)
	}
}

func TestParseMatchListTimeOnlyEntryKeepsClockDate(t *testing.T) {
	parser := NewWithClock(fixedClock)

	text := `FUTEBOL HOJE
Flamengo vs Palmeiras
20/04/2025 - 18:00
Santos vs Grêmio
20/04/2025 - 20:30
Bahia vs Fortaleza
21/04/2025 - 16:00
Cruzeiro vs Internacional
21/04/2025 - 18:30
Transmissão ao vivo
Aposte com responsabilidade
Estatísticas completas
Botafogo vs Vasco
20:00`

	result := parser.Parse(text)

	if result.Type != ContentMatchList {
		t.Fatalf("Type = %v, want match list", result.Type)
	}
	if len(result.Document.Matches) != 5 {
		t.Fatalf("Matches = %d, want 5", len(result.Document.Matches))
	}

	last := result.Document.Matches[len(result.Document.Matches)-1]
	if last.HomeTeam != "Botafogo" || last.AwayTeam != "Vasco" {
		t.Fatalf("last pair = %q vs %q", last.HomeTeam, last.AwayTeam)
	}
	if last.Time != "20:00" {
		t.Errorf("last Time = %q, want 20:00", last.Time)
	}
	if last.Date != "15/04/2025" {
		t.Errorf("last Date = %q, want the reference date", last.Date)
	}
}

func TestParseLeagueTable(t *testing.T) {
	parser := NewWithClock(fixedClock)

	text := `CLASSIFICAÇÕES NESTA COMPETIÇÃO
Posição Time P J V E D
1 Flamengo 10 4 3 1 0
2 Palmeiras 9 4 3 0 1
3 Cruzeiro 7 4 2 1 1`

	result := parser.Parse(text)

	if result.Type != ContentLeagueTable {
		t.Fatalf("Type = %v, want league table", result.Type)
	}
	if len(result.Document.Standings) != 3 {
		t.Fatalf("Standings = %d, want 3", len(result.Document.Standings))
	}

	top := result.Document.Standings[0]
	if top.Position != 1 || top.Team != "Flamengo" || top.Points != 10 {
		t.Errorf("top row = %+v", top)
	}
	if top.Played != 4 || top.Wins != 3 || top.Draws != 1 || top.Losses != 0 {
		t.Errorf("top row record = %+v", top)
	}
}

func TestParseUnrecognizedProse(t *testing.T) {
	parser := NewWithClock(fixedClock)

	result := parser.Parse("O tempo estará nublado amanhã, com possibilidade de chuva à tarde.")

	if result.Type != ContentUnrecognized {
		t.Fatalf("Type = %v, want unrecognized", result.Type)
	}
	if len(result.Document.Matches) != 0 {
		t.Errorf("Matches = %v, want empty", result.Document.Matches)
	}
}

func TestExtractCompetitionCanonicalNames(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"BRASILEIRÃO SÉRIE A", "Brasileirão Série A"},
		{"brasileirão série b", "Brasileirão Série B"},
		{"COPA DO BRASIL", "Copa do Brasil"},
		{"copa do brasil oitavas", "Copa do Brasil"},
		{"Taça LIBERTADORES", "Libertadores"},
		{"sul-americana", "Sul-Americana"},
		{"Campeonato Paulista", ""},
	}

	for _, tc := range cases {
		if got := extractCompetition(tc.in); got != tc.want {
			t.Errorf("extractCompetition(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseHugeStreakCountStaysBounded(t *testing.T) {
	parser := NewWithClock(fixedClock)

	text := `Quem será o vencedor?
Corinthians vs Sport
Sequência de Vitórias 2000000000`

	result := parser.Parse(text)
	if len(result.Document.Matches) != 1 {
		t.Fatalf("Matches = %d, want 1", len(result.Document.Matches))
	}

	game := result.Document.Matches[0]
	form := result.Document.Statistics[game.ID].Home.RecentForm
	if len(form) != teamstats.FormLength {
		t.Fatalf("RecentForm length = %d, want %d", len(form), teamstats.FormLength)
	}
	for _, symbol := range form {
		if symbol != teamstats.OutcomeWin {
			t.Errorf("RecentForm = %v, want all wins", form)
			break
		}
	}
}

func TestParseReportWithoutKickoffUsesClock(t *testing.T) {
	parser := NewWithClock(fixedClock)

	text := `Quem será o vencedor?
Corinthians vs Sport`

	result := parser.Parse(text)
	if len(result.Document.Matches) != 1 {
		t.Fatalf("Matches = %d, want 1", len(result.Document.Matches))
	}

	game := result.Document.Matches[0]
	if game.Date != "15/04/2025" {
		t.Errorf("Date = %q, want clock date", game.Date)
	}
	if game.Time != "00:00" {
		t.Errorf("Time = %q, want 00:00", game.Time)
	}
	if game.Competition != match.Unspecified {
		t.Errorf("Competition = %q, want %q", game.Competition, match.Unspecified)
	}
}

func TestParseAbbreviatedMonthKickoff(t *testing.T) {
	parser := NewWithClock(fixedClock)

	text := `Quem será o vencedor?
Corinthians vs Sport
19 abr - 16:00`

	game := parser.Parse(text).Document.Matches[0]
	if game.Date != "19/04/2025" {
		t.Errorf("Date = %q, want 19/04/2025", game.Date)
	}
	if game.Time != "16:00" {
		t.Errorf("Time = %q, want 16:00", game.Time)
	}
}
