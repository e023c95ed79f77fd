package headtohead

import (
	"strconv"
	"strings"
)

// Meeting is one past fixture between the two teams.
type Meeting struct {
	Date        string `json:"data"`
	Host        string `json:"mandante"`
	Guest       string `json:"visitante"`
	Score       string `json:"placar"`
	Competition string `json:"competicao"`
}

// Summary is the three-way tally of past meetings. The counts are
// carried exactly as extracted, so Total may disagree with the sum
// when the source text itself was inconsistent.
type Summary struct {
	Total    int `json:"total"`
	HomeWins int `json:"vitorias_casa"`
	Draws    int `json:"empates"`
	AwayWins int `json:"vitorias_visitante"`
}

// Consistent reports whether the win/draw/loss counts add up to Total.
func (s Summary) Consistent() bool {
	return s.HomeWins+s.Draws+s.AwayWins == s.Total
}

// Record pairs the summary with the individual meetings.
type Record struct {
	Summary  Summary   `json:"resumo"`
	Meetings []Meeting `json:"confrontos"`
}

// Tally accumulates a summary from meetings, crediting each result to
// the given home or away side by case-insensitive host matching.
func Tally(meetings []Meeting, home, away string) Summary {
	sum := Summary{Total: len(meetings)}
	for _, m := range meetings {
		hostGoals, guestGoals, ok := splitScore(m.Score)
		if !ok {
			continue
		}
		hostIsHome := strings.EqualFold(strings.TrimSpace(m.Host), strings.TrimSpace(home))
		switch {
		case hostGoals == guestGoals:
			sum.Draws++
		case hostGoals > guestGoals && hostIsHome, hostGoals < guestGoals && !hostIsHome:
			sum.HomeWins++
		default:
			sum.AwayWins++
		}
	}
	return sum
}

func splitScore(score string) (host, guest int, ok bool) {
	sep := strings.IndexByte(score, '-')
	if sep < 0 {
		return 0, 0, false
	}
	host, errHost := strconv.Atoi(strings.TrimSpace(score[:sep]))
	guest, errGuest := strconv.Atoi(strings.TrimSpace(score[sep+1:]))
	if errHost != nil || errGuest != nil {
		return 0, 0, false
	}
	return host, guest, true
}
