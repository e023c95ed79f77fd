package textparse

import (
	"strings"

	"github.com/lucasveiga/palpiteiro/internal/domain/odds"
)

// oddsScanWindow bounds the fallback scan below the market header.
const oddsScanWindow = 9

// extractOdds captures the three bookmaker markets. The 1X2 market
// tries the strict inline pattern first; the fallback scans the lines
// below a Casa/Empate/Fora header for any three decimals. Missing
// prices stay zero.
func extractOdds(text string) odds.Snapshot {
	var snap odds.Snapshot

	if m := reOddsResult.FindStringSubmatch(text); m != nil {
		snap.Result.Home = atof(m[1])
		snap.Result.Draw = atof(m[2])
		snap.Result.Away = atof(m[3])
	} else {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if !reOddsHeaderLine.MatchString(line) {
				continue
			}
			for j := i + 1; j <= i+oddsScanWindow && j < len(lines); j++ {
				nums := reDecimal.FindAllString(lines[j], -1)
				if len(nums) >= 3 {
					snap.Result.Home = atof(nums[0])
					snap.Result.Draw = atof(nums[1])
					snap.Result.Away = atof(nums[2])
					break
				}
			}
			if snap.HasResult() {
				break
			}
		}
	}

	if m := reOddsOverUnder.FindStringSubmatch(text); m != nil {
		snap.Goals.Over25 = atof(m[1])
		snap.Goals.Under25 = atof(m[2])
	} else if m := reOddsOverAlt.FindStringSubmatch(text); m != nil {
		snap.Goals.Over25 = atof(m[1])
		snap.Goals.Under25 = atof(m[2])
	}

	if m := reOddsBothScore.FindStringSubmatch(text); m != nil {
		snap.BothScore.Yes = atof(m[1])
		snap.BothScore.No = atof(m[2])
	}

	return snap
}
