package textparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasveiga/palpiteiro/internal/domain/teamstats"
)

// extractTeamStats captures a team's standings line: position and
// team name followed by points, played, wins, draws, losses and a
// "for:against" goal pair. Returns zero stats when the line is
// absent.
func extractTeamStats(text, team string) (teamstats.SeasonStats, bool) {
	var stats teamstats.SeasonStats
	if team == "" {
		return stats, false
	}

	pattern, err := regexp.Compile(`(?i)(\d+)\s+` + regexp.QuoteMeta(team) + `\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+:\d+)`)
	if err != nil {
		return stats, false
	}

	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return stats, false
	}

	stats.Position = atoi(m[1])
	stats.Points = atoi(m[2])
	stats.Played = atoi(m[3])
	stats.Wins = atoi(m[4])
	stats.Draws = atoi(m[5])
	stats.Losses = atoi(m[6])

	goals := strings.SplitN(m[7], ":", 2)
	stats.GoalsFor = atoi(goals[0])
	stats.GoalsAgainst = atoi(goals[1])
	stats.Derive()

	return stats, true
}

// extractStreak turns the last "Sequência de ..." phrase into a run
// of identical outcome symbols. Later phrases override earlier ones.
func extractStreak(text string) []string {
	var form []string
	for _, m := range reStreak.FindAllStringSubmatch(text, -1) {
		count := atoi(m[2])
		if count < 0 {
			continue
		}
		// The form is truncated to FormLength anyway, so a stated
		// count beyond it must not drive the allocation.
		if count > teamstats.FormLength {
			count = teamstats.FormLength
		}
		symbol := teamstats.OutcomeUnknown
		switch strings.ToLower(m[1]) {
		case "vitórias":
			symbol = teamstats.OutcomeWin
		case "empates":
			symbol = teamstats.OutcomeDraw
		case "derrotas":
			symbol = teamstats.OutcomeLoss
		}
		run := make([]string, count)
		for i := range run {
			run[i] = symbol
		}
		form = run
	}
	return form
}

// extractScoringRates fills per-game goal averages for both sides
// from the paired "Média de gols ..." lines.
func extractScoringRates(text string, home, away *teamstats.SeasonStats) {
	if m := reGoalsScoredAvg.FindStringSubmatch(text); m != nil {
		home.MeanScored = atof(m[1])
		away.MeanScored = atof(m[2])
	}
	if m := reGoalsTakenAvg.FindStringSubmatch(text); m != nil {
		home.MeanConceded = atof(m[1])
		away.MeanConceded = atof(m[2])
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
