package headtohead

import "testing"

func TestTally(t *testing.T) {
	meetings := []Meeting{
		{Date: "09/10/2021", Host: "Sport", Guest: "Corinthians", Score: "1-0"},
		{Date: "24/09/2021", Host: "Corinthians", Guest: "Sport", Score: "2-1"},
		{Date: "12/05/2021", Host: "sport", Guest: "corinthians", Score: "1-1"},
	}

	sum := Tally(meetings, "Corinthians", "Sport")

	if sum.Total != 3 {
		t.Errorf("Total = %d, want 3", sum.Total)
	}
	if sum.HomeWins != 1 {
		t.Errorf("HomeWins = %d, want 1", sum.HomeWins)
	}
	if sum.AwayWins != 1 {
		t.Errorf("AwayWins = %d, want 1", sum.AwayWins)
	}
	if sum.Draws != 1 {
		t.Errorf("Draws = %d, want 1", sum.Draws)
	}
	if !sum.Consistent() {
		t.Error("Consistent() = false, want true")
	}
}

func TestTallySkipsMalformedScores(t *testing.T) {
	meetings := []Meeting{
		{Host: "Sport", Guest: "Corinthians", Score: "abandoned"},
		{Host: "Sport", Guest: "Corinthians", Score: "3-0"},
	}

	sum := Tally(meetings, "Corinthians", "Sport")

	if sum.Total != 2 {
		t.Errorf("Total = %d, want 2", sum.Total)
	}
	if sum.AwayWins != 1 {
		t.Errorf("AwayWins = %d, want 1", sum.AwayWins)
	}
	if sum.Consistent() {
		t.Error("Consistent() = true, want false for skipped score")
	}
}

func TestConsistentDetectsMismatch(t *testing.T) {
	sum := Summary{Total: 5, HomeWins: 2, Draws: 1, AwayWins: 1}
	if sum.Consistent() {
		t.Error("Consistent() = true for counts that do not sum to total")
	}
}
