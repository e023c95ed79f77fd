package textparse

import "github.com/lucasveiga/palpiteiro/internal/domain/markets"

// extractAdditional captures the corner and card averages, one value
// per side, and fills the combined head-to-head mean when both sides
// have one.
func extractAdditional(text string) markets.Additional {
	var extra markets.Additional

	if m := reCornerAvg.FindStringSubmatch(text); m != nil {
		extra.Corners.Home.PerGame = atof(m[1])
		extra.Corners.Away.PerGame = atof(m[2])
		extra.Corners.Combined.PerGame = markets.PairAverage(
			extra.Corners.Home.PerGame, extra.Corners.Away.PerGame)
	}

	if m := reYellowCardAvg.FindStringSubmatch(text); m != nil {
		extra.Cards.Home.YellowPerGame = atof(m[1])
		extra.Cards.Away.YellowPerGame = atof(m[2])
		extra.Cards.Combined.PerGame = markets.PairAverage(
			extra.Cards.Home.YellowPerGame, extra.Cards.Away.YellowPerGame)
	}

	return extra
}
