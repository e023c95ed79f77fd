// Package markets holds corner and card averages extracted per team.
package markets

import "math"

type CornerAverages struct {
	PerGame    float64 `json:"media_por_jogo"`
	FirstHalf  float64 `json:"media_primeiro_tempo"`
	SecondHalf float64 `json:"media_segundo_tempo"`
}

type CardAverages struct {
	YellowPerGame float64 `json:"cartoes_amarelos_media"`
	RedTotal      int     `json:"cartoes_vermelhos_total"`
}

type CornerMarket struct {
	Home     CornerAverages `json:"time_casa"`
	Away     CornerAverages `json:"time_visitante"`
	Combined CombinedAvg    `json:"confrontos_diretos"`
}

type CardMarket struct {
	Home     CardAverages `json:"time_casa"`
	Away     CardAverages `json:"time_visitante"`
	Combined CombinedAvg  `json:"confrontos_diretos"`
}

type CombinedAvg struct {
	PerGame float64 `json:"media_por_jogo"`
}

// Additional bundles the extra markets under their document keys.
type Additional struct {
	Corners CornerMarket `json:"escanteios"`
	Cards   CardMarket   `json:"cartoes"`
}

// PairAverage is the unweighted mean of the two sides' averages,
// rounded to one decimal. It stays zero unless both sides have a
// value.
func PairAverage(home, away float64) float64 {
	if home <= 0 || away <= 0 {
		return 0
	}
	return math.Round((home+away)/2*10) / 10
}
