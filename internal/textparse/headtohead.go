package textparse

import (
	"github.com/lucasveiga/palpiteiro/internal/domain/headtohead"
	"github.com/lucasveiga/palpiteiro/internal/domain/match"
)

// extractHeadToHead captures the stated meeting count and the
// individual fixture lines, then tallies each fixture's winner
// relative to the given home and away labels. The stated total is
// kept as extracted even when it disagrees with the tally.
func extractHeadToHead(text, home, away string) headtohead.Record {
	var meetings []headtohead.Meeting
	for _, m := range reH2HFixture.FindAllStringSubmatch(text, -1) {
		meetings = append(meetings, headtohead.Meeting{
			Date:        m[1],
			Host:        m[2],
			Guest:       m[5],
			Score:       m[3] + "-" + m[4],
			Competition: match.Unspecified,
		})
	}

	summary := headtohead.Tally(meetings, home, away)
	if m := reH2HCount.FindStringSubmatch(text); m != nil {
		summary.Total = atoi(m[1])
	}

	if meetings == nil {
		meetings = []headtohead.Meeting{}
	}
	return headtohead.Record{Summary: summary, Meetings: meetings}
}
