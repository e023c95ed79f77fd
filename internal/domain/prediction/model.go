// Package prediction estimates match outcome probabilities from a
// Poisson goal model and derives betting suggestions from them.
package prediction

import (
	"fmt"
	"math"
	"sort"
)

// maxGoals bounds the score matrix per side.
const maxGoals = 5

// homeAdvantage scales the home side's expected goals.
const homeAdvantage = 1.3

// firstHalfShare is the assumed share of goals scored before the
// break.
const firstHalfShare = 0.4

// leagueGoalAverage is the typical total goals per game used to scale
// attack and defence strengths.
const leagueGoalAverage = 2.5

// TeamRates carries a side's per-game scoring averages.
type TeamRates struct {
	GoalsScored   float64 `json:"media_gols_marcados"`
	GoalsConceded float64 `json:"media_gols_sofridos"`
}

// ExactScore is one scoreline with its estimated probability.
type ExactScore struct {
	Score       string  `json:"resultado"`
	Probability float64 `json:"probabilidade"`
}

// Probabilities holds the model output for every covered market.
type Probabilities struct {
	HomeWin float64 `json:"casa"`
	Draw    float64 `json:"empate"`
	AwayWin float64 `json:"fora"`

	Over15  float64 `json:"over_1_5"`
	Over25  float64 `json:"over_2_5"`
	Under25 float64 `json:"under_2_5"`
	Under35 float64 `json:"under_3_5"`

	BothScoreYes float64 `json:"ambos_marcam_sim"`
	BothScoreNo  float64 `json:"ambos_marcam_nao"`

	FirstHalfOver05  float64 `json:"ht_over_0_5"`
	FirstHalfUnder15 float64 `json:"ht_under_1_5"`

	TopScores []ExactScore `json:"resultados_exatos"`

	HomeLambda float64 `json:"lambda_casa"`
	AwayLambda float64 `json:"lambda_fora"`
}

// Estimate runs the Poisson goal model for the given sides. Expected
// goals are the product of one side's attack strength and the other's
// defence strength, both relative to half the league average, with
// the home side boosted by the home-advantage factor.
func Estimate(home, away TeamRates) Probabilities {
	half := leagueGoalAverage / 2

	homeLambda := (home.GoalsScored / half) * (away.GoalsConceded / half) * homeAdvantage
	awayLambda := (away.GoalsScored / half) * (home.GoalsConceded / half)

	var matrix [maxGoals + 1][maxGoals + 1]float64
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			matrix[i][j] = poissonPMF(i, homeLambda) * poissonPMF(j, awayLambda)
		}
	}

	p := Probabilities{HomeLambda: homeLambda, AwayLambda: awayLambda}

	var under15, under25, noGoalHome, noGoalAway float64
	for i := 0; i <= maxGoals; i++ {
		noGoalHome += matrix[0][i]
		noGoalAway += matrix[i][0]
		for j := 0; j <= maxGoals; j++ {
			prob := matrix[i][j]
			switch {
			case i > j:
				p.HomeWin += prob
			case i == j:
				p.Draw += prob
			default:
				p.AwayWin += prob
			}
			if i+j <= 1 {
				under15 += prob
			}
			if i+j <= 2 {
				under25 += prob
			}
			if i+j <= 3 {
				p.Under35 += prob
			}
		}
	}
	p.Over15 = 1 - under15
	p.Over25 = 1 - under25
	p.Under25 = under25
	p.BothScoreYes = 1 - (noGoalHome + noGoalAway - matrix[0][0])
	p.BothScoreNo = 1 - p.BothScoreYes

	htHome := homeLambda * firstHalfShare
	htAway := awayLambda * firstHalfShare
	htNone := poissonPMF(0, htHome) * poissonPMF(0, htAway)
	htOne := poissonPMF(1, htHome)*poissonPMF(0, htAway) + poissonPMF(0, htHome)*poissonPMF(1, htAway)
	p.FirstHalfOver05 = 1 - htNone
	p.FirstHalfUnder15 = htNone + htOne

	p.TopScores = topScores(&matrix, 3)

	return p
}

func topScores(matrix *[maxGoals + 1][maxGoals + 1]float64, n int) []ExactScore {
	scores := make([]ExactScore, 0, (maxGoals+1)*(maxGoals+1))
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			scores = append(scores, ExactScore{
				Score:       fmt.Sprintf("%d-%d", i, j),
				Probability: matrix[i][j],
			})
		}
	}
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Probability > scores[b].Probability
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

func poissonPMF(k int, lambda float64) float64 {
	if lambda < 0 {
		return 0
	}
	return math.Exp(-lambda) * math.Pow(lambda, float64(k)) / factorial(k)
}

func factorial(k int) float64 {
	out := 1.0
	for i := 2; i <= k; i++ {
		out *= float64(i)
	}
	return out
}
