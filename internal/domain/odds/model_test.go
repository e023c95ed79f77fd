package odds

import "testing"

func TestWithFallbacks(t *testing.T) {
	partial := Snapshot{
		Result: MatchResult{Home: 1.5, Draw: 3.9, Away: 7.5},
	}

	filled := partial.WithFallbacks()

	if filled.Result != partial.Result {
		t.Errorf("extracted 1X2 prices changed: %+v", filled.Result)
	}
	if filled.Goals.Over25 != FallbackOver || filled.Goals.Under25 != FallbackUnder {
		t.Errorf("Goals = %+v, want fallbacks", filled.Goals)
	}
	if filled.BothScore.Yes != FallbackBothYes || filled.BothScore.No != FallbackBothNo {
		t.Errorf("BothScore = %+v, want fallbacks", filled.BothScore)
	}

	if partial.Goals.Over25 != 0 {
		t.Error("WithFallbacks mutated the receiver")
	}
}

func TestHasResult(t *testing.T) {
	if (Snapshot{}).HasResult() {
		t.Error("empty snapshot reports a result market")
	}
	full := Snapshot{Result: MatchResult{Home: 1.5, Draw: 3.9, Away: 7.5}}
	if !full.HasResult() {
		t.Error("priced snapshot reports no result market")
	}
}
