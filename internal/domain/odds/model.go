// Package odds models bookmaker prices for the three extracted
// markets. A zero price always means "not extracted", never a real
// quote.
package odds

// Fallback prices substituted by callers that need a usable quote
// when extraction came up empty.
const (
	FallbackHome = 2.0
	FallbackDraw = 3.2
	FallbackAway = 3.5

	FallbackOver  = 2.0
	FallbackUnder = 1.8

	FallbackBothYes = 1.9
	FallbackBothNo  = 1.9
)

type MatchResult struct {
	Home float64 `json:"casa"`
	Draw float64 `json:"empate"`
	Away float64 `json:"visitante"`
}

type OverUnder struct {
	Over25  float64 `json:"over_2_5"`
	Under25 float64 `json:"under_2_5"`
}

type BothScore struct {
	Yes float64 `json:"sim"`
	No  float64 `json:"nao"`
}

type Snapshot struct {
	Result    MatchResult `json:"resultado"`
	Goals     OverUnder   `json:"over_under"`
	BothScore BothScore   `json:"ambos_marcam"`
}

// HasResult reports whether the 1X2 market carries real prices.
func (s Snapshot) HasResult() bool {
	return s.Result.Home > 0 && s.Result.Draw > 0 && s.Result.Away > 0
}

// WithFallbacks returns a copy with every unextracted price replaced
// by its fallback constant. The original snapshot is left untouched so
// callers can still tell extracted prices from substituted ones.
func (s Snapshot) WithFallbacks() Snapshot {
	out := s
	if out.Result.Home == 0 {
		out.Result.Home = FallbackHome
	}
	if out.Result.Draw == 0 {
		out.Result.Draw = FallbackDraw
	}
	if out.Result.Away == 0 {
		out.Result.Away = FallbackAway
	}
	if out.Goals.Over25 == 0 {
		out.Goals.Over25 = FallbackOver
	}
	if out.Goals.Under25 == 0 {
		out.Goals.Under25 = FallbackUnder
	}
	if out.BothScore.Yes == 0 {
		out.BothScore.Yes = FallbackBothYes
	}
	if out.BothScore.No == 0 {
		out.BothScore.No = FallbackBothNo
	}
	return out
}
