package prediction

import (
	"math"
	"testing"

	"github.com/lucasveiga/palpiteiro/internal/domain/odds"
)

func TestEstimateProbabilitySums(t *testing.T) {
	p := Estimate(
		TeamRates{GoalsScored: 1.8, GoalsConceded: 1.0},
		TeamRates{GoalsScored: 1.2, GoalsConceded: 1.5},
	)

	total := p.HomeWin + p.Draw + p.AwayWin
	if total <= 0.95 || total > 1.0+1e-9 {
		t.Errorf("1X2 probabilities sum to %v, want near 1", total)
	}
	if math.Abs(p.Over25+p.Under25-1) > 1e-9 {
		t.Errorf("Over25+Under25 = %v, want 1", p.Over25+p.Under25)
	}
	if math.Abs(p.BothScoreYes+p.BothScoreNo-1) > 1e-9 {
		t.Errorf("BothScoreYes+BothScoreNo = %v, want 1", p.BothScoreYes+p.BothScoreNo)
	}
}

func TestEstimateHomeAdvantage(t *testing.T) {
	// Identical sides: only the home factor separates the lambdas.
	same := TeamRates{GoalsScored: 1.25, GoalsConceded: 1.25}
	p := Estimate(same, same)

	if p.HomeLambda <= p.AwayLambda {
		t.Errorf("HomeLambda = %v, AwayLambda = %v, want home boosted", p.HomeLambda, p.AwayLambda)
	}
	if p.HomeWin <= p.AwayWin {
		t.Errorf("HomeWin = %v <= AwayWin = %v for identical sides", p.HomeWin, p.AwayWin)
	}
}

func TestEstimateTopScores(t *testing.T) {
	p := Estimate(
		TeamRates{GoalsScored: 1.5, GoalsConceded: 1.0},
		TeamRates{GoalsScored: 1.0, GoalsConceded: 1.2},
	)

	if len(p.TopScores) != 3 {
		t.Fatalf("len(TopScores) = %d, want 3", len(p.TopScores))
	}
	for i := 1; i < len(p.TopScores); i++ {
		if p.TopScores[i].Probability > p.TopScores[i-1].Probability {
			t.Errorf("TopScores not sorted: %v", p.TopScores)
		}
	}
}

func TestEstimateIsDeterministic(t *testing.T) {
	home := TeamRates{GoalsScored: 1.7, GoalsConceded: 0.9}
	away := TeamRates{GoalsScored: 1.1, GoalsConceded: 1.4}

	a := Estimate(home, away)
	b := Estimate(home, away)
	if a.HomeWin != b.HomeWin || a.TopScores[0] != b.TopScores[0] {
		t.Error("repeated estimates differ")
	}
}

func TestSuggestAlwaysPicksResult(t *testing.T) {
	p := Estimate(
		TeamRates{GoalsScored: 2.2, GoalsConceded: 0.8},
		TeamRates{GoalsScored: 0.9, GoalsConceded: 1.8},
	)

	suggestions := Suggest(p)
	if len(suggestions) == 0 {
		t.Fatal("no suggestions")
	}
	if suggestions[0].Market != "resultado" {
		t.Errorf("first suggestion market = %q, want resultado", suggestions[0].Market)
	}
	if suggestions[0].Pick != "casa" {
		t.Errorf("pick = %q, want casa for a dominant home side", suggestions[0].Pick)
	}
}

func TestSuggestSkipsLowConfidenceMarkets(t *testing.T) {
	p := Probabilities{
		HomeWin: 0.40, Draw: 0.30, AwayWin: 0.30,
		Over25: 0.50, Under25: 0.50,
		BothScoreYes: 0.50, BothScoreNo: 0.50,
		FirstHalfOver05: 0.60, FirstHalfUnder15: 0.40,
	}

	suggestions := Suggest(p)
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %v, want only the result pick", suggestions)
	}
}

func TestSuggestWithOddsPricesThePicks(t *testing.T) {
	p := Probabilities{HomeWin: 0.50, Draw: 0.28, AwayWin: 0.22}
	snapshot := odds.Snapshot{
		Result: odds.MatchResult{Home: 2.4, Draw: 3.2, Away: 3.5},
	}

	suggestions := SuggestWithOdds(p, snapshot)
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %v, want only the result pick", suggestions)
	}
	if suggestions[0].ExpectedValue != 1.2 {
		t.Errorf("expected value = %v, want 1.2 for 0.50 at 2.4", suggestions[0].ExpectedValue)
	}
}

func TestSuggestWithOddsSkipsMissingPrices(t *testing.T) {
	p := Probabilities{HomeWin: 0.50, Draw: 0.28, AwayWin: 0.22}

	suggestions := SuggestWithOdds(p, odds.Snapshot{})
	if suggestions[0].ExpectedValue != 0 {
		t.Errorf("expected value = %v, want 0 without a price", suggestions[0].ExpectedValue)
	}
}
