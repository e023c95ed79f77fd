package prediction

import (
	"math"

	"github.com/lucasveiga/palpiteiro/internal/domain/odds"
)

// Suggestion confidence thresholds per market.
const (
	goalsThreshold     = 0.55
	bothScoreThreshold = 0.60
	firstHalfThreshold = 0.65
)

// Suggestion is one recommended bet with the model's confidence in it.
// ExpectedValue is probability times price, filled only when a price
// for the picked market is available.
type Suggestion struct {
	Market        string  `json:"mercado"`
	Pick          string  `json:"palpite"`
	Probability   float64 `json:"probabilidade"`
	ExpectedValue float64 `json:"valor_esperado,omitempty"`
}

// Suggest derives betting suggestions from model output. The match
// result market always yields a pick; the remaining markets only
// appear when their probability clears the market's threshold.
func Suggest(p Probabilities) []Suggestion {
	out := make([]Suggestion, 0, 4)

	pick, prob := "casa", p.HomeWin
	if p.Draw > prob {
		pick, prob = "empate", p.Draw
	}
	if p.AwayWin > prob {
		pick, prob = "fora", p.AwayWin
	}
	out = append(out, Suggestion{Market: "resultado", Pick: pick, Probability: prob})

	switch {
	case p.Over25 > goalsThreshold:
		out = append(out, Suggestion{Market: "over_under", Pick: "over_2_5", Probability: p.Over25})
	case p.Under25 > goalsThreshold:
		out = append(out, Suggestion{Market: "over_under", Pick: "under_2_5", Probability: p.Under25})
	}

	switch {
	case p.BothScoreYes > bothScoreThreshold:
		out = append(out, Suggestion{Market: "ambos_marcam", Pick: "sim", Probability: p.BothScoreYes})
	case p.BothScoreNo > bothScoreThreshold:
		out = append(out, Suggestion{Market: "ambos_marcam", Pick: "nao", Probability: p.BothScoreNo})
	}

	switch {
	case p.FirstHalfOver05 > firstHalfThreshold:
		out = append(out, Suggestion{Market: "gols_ht", Pick: "over_0_5", Probability: p.FirstHalfOver05})
	case p.FirstHalfUnder15 > firstHalfThreshold:
		out = append(out, Suggestion{Market: "gols_ht", Pick: "under_1_5", Probability: p.FirstHalfUnder15})
	}

	return out
}

// SuggestWithOdds derives suggestions and prices each one against the
// given snapshot. An expected value above 1.0 marks a pick the model
// considers underpriced.
func SuggestWithOdds(p Probabilities, o odds.Snapshot) []Suggestion {
	out := Suggest(p)
	for i := range out {
		price := pickPrice(out[i], o)
		if price > 0 {
			out[i].ExpectedValue = round2(out[i].Probability * price)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func pickPrice(s Suggestion, o odds.Snapshot) float64 {
	switch s.Market {
	case "resultado":
		switch s.Pick {
		case "casa":
			return o.Result.Home
		case "empate":
			return o.Result.Draw
		case "fora":
			return o.Result.Away
		}
	case "over_under":
		if s.Pick == "over_2_5" {
			return o.Goals.Over25
		}
		return o.Goals.Under25
	case "ambos_marcam":
		if s.Pick == "sim" {
			return o.BothScore.Yes
		}
		return o.BothScore.No
	}
	return 0
}
