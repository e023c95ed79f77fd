package teamstats

import "math"

const (
	OutcomeWin     = "V"
	OutcomeDraw    = "E"
	OutcomeLoss    = "D"
	OutcomeUnknown = "?"
)

// FormLength is the fixed size of the recent-results sequence.
const FormLength = 5

// SeasonStats holds one team's league campaign numbers as extracted
// from a standings block.
type SeasonStats struct {
	Position     int      `json:"posicao"`
	Points       int      `json:"pontos"`
	Played       int      `json:"jogos"`
	Wins         int      `json:"vitorias"`
	Draws        int      `json:"empates"`
	Losses       int      `json:"derrotas"`
	GoalsFor     int      `json:"gols_marcados"`
	GoalsAgainst int      `json:"gols_sofridos"`
	GoalDiff     int      `json:"saldo_gols"`
	WinRate      float64  `json:"aproveitamento"`
	MeanScored   float64  `json:"media_gols_marcados"`
	MeanConceded float64  `json:"media_gols_sofridos"`
	RecentForm   []string `json:"ultimos_jogos"`
}

// ScoringRates returns per-game averages, preferring the extracted
// means and deriving them from season totals when absent.
func (s SeasonStats) ScoringRates() (scored, conceded float64) {
	scored, conceded = s.MeanScored, s.MeanConceded
	if s.Played > 0 {
		if scored == 0 {
			scored = float64(s.GoalsFor) / float64(s.Played)
		}
		if conceded == 0 {
			conceded = float64(s.GoalsAgainst) / float64(s.Played)
		}
	}
	return scored, conceded
}

// Derive fills the computed fields from the captured ones. WinRate is
// the share of available points, as a percentage rounded to one
// decimal, and stays zero while no games were played.
func (s *SeasonStats) Derive() {
	s.GoalDiff = s.GoalsFor - s.GoalsAgainst
	if s.Played > 0 {
		s.WinRate = math.Round(float64(s.Points)/float64(s.Played*3)*1000) / 10
	}
}

// NormalizeForm pads a recent-results sequence with unknown markers or
// truncates it so the result is always exactly FormLength entries.
func NormalizeForm(results []string) []string {
	form := make([]string, 0, FormLength)
	for _, r := range results {
		if len(form) == FormLength {
			break
		}
		switch r {
		case OutcomeWin, OutcomeDraw, OutcomeLoss:
			form = append(form, r)
		default:
			form = append(form, OutcomeUnknown)
		}
	}
	for len(form) < FormLength {
		form = append(form, OutcomeUnknown)
	}
	return form
}
