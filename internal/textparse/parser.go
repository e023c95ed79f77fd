// Package textparse turns text pasted from a betting-statistics site
// into normalized match records. Extraction is heuristic: every
// extractor degrades to a documented default instead of failing, so a
// parse never returns an error for malformed content.
package textparse

import (
	"strings"
	"time"

	"github.com/lucasveiga/palpiteiro/internal/domain/match"
	"github.com/lucasveiga/palpiteiro/internal/domain/standings"
	"github.com/lucasveiga/palpiteiro/internal/domain/teamstats"
)

// listContextWindow is how many lines around a team-pair line are
// searched for its date and competition.
const listContextWindow = 3

// Result is the outcome of one parse: the detected content type plus
// the assembled document.
type Result struct {
	Type     ContentType
	Document *match.Document
}

// Parser is stateless apart from its clock and safe for concurrent
// use.
type Parser struct {
	now func() time.Time
}

func New() *Parser {
	return &Parser{now: time.Now}
}

// NewWithClock builds a parser with a fixed clock source, used where
// parse output must be reproducible.
func NewWithClock(now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{now: now}
}

// Parse normalizes and classifies the text, then runs the extraction
// path for its content type. Unrecognized text yields an empty
// document, never an error.
func (p *Parser) Parse(text string) Result {
	text = Normalize(text)

	switch contentType := Classify(text); contentType {
	case ContentMatchReport:
		return Result{Type: contentType, Document: p.parseReport(text)}
	case ContentMatchList:
		return Result{Type: contentType, Document: p.parseList(text)}
	case ContentLeagueTable:
		return Result{Type: contentType, Document: p.parseTable(text)}
	default:
		return Result{Type: ContentUnrecognized, Document: match.NewDocument()}
	}
}

func (p *Parser) parseReport(text string) *match.Document {
	doc := match.NewDocument()

	home, away, ok := extractTeams(text)
	if !ok {
		return doc
	}

	date, clock, ok := extractDateTime(text, p.now())
	if !ok {
		date = p.now().Format("02/01/2006")
		clock = "00:00"
	}

	competition := extractCompetition(text)
	if competition == "" {
		competition = match.Unspecified
	}

	game := match.Match{
		ID:          match.NewID(home, away, date, clock),
		HomeTeam:    home,
		AwayTeam:    away,
		Date:        date,
		Time:        clock,
		Competition: competition,
	}
	doc.Matches = append(doc.Matches, game)
	doc.Statistics[game.ID] = p.assembleStatistics(text, home, away)

	return doc
}

func (p *Parser) assembleStatistics(text, home, away string) match.Statistics {
	homeStats, _ := extractTeamStats(text, home)
	awayStats, _ := extractTeamStats(text, away)
	extractScoringRates(text, &homeStats, &awayStats)

	homeStats.RecentForm = teamstats.NormalizeForm(extractStreak(text))
	awayStats.RecentForm = teamstats.NormalizeForm(nil)

	return match.Statistics{
		Home:       homeStats,
		Away:       awayStats,
		HeadToHead: extractHeadToHead(text, home, away),
		Odds:       extractOdds(text),
		Additional: extractAdditional(text),
	}
}

func (p *Parser) parseList(text string) *match.Document {
	doc := match.NewDocument()
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		pair := reTeamPair.FindStringSubmatch(line)
		if pair == nil {
			continue
		}
		home := strings.TrimSpace(pair[1])
		away := strings.TrimSpace(pair[2])

		// The kickoff line usually follows the pair line, so the
		// forward half of the window is scanned first.
		var date, clock, competition string
		order := make([]int, 0, 2*listContextWindow)
		for j := i + 1; j <= i+listContextWindow && j < len(lines); j++ {
			order = append(order, j)
		}
		for j := i - 1; j >= 0 && j >= i-listContextWindow; j-- {
			order = append(order, j)
		}
		for _, j := range order {
			if date == "" {
				date = reFullDate.FindString(lines[j])
			}
			if clock == "" {
				if m := reClockTime.FindStringSubmatch(lines[j]); m != nil {
					clock = pad2(m[1]) + ":" + m[2]
				}
			}
			if competition == "" {
				competition = extractCompetition(lines[j])
			}
		}

		if date == "" && clock == "" {
			continue
		}
		if date == "" {
			date = p.now().Format("02/01/2006")
		}
		if clock == "" {
			clock = "00:00"
		}
		if competition == "" {
			competition = match.Unspecified
		}

		doc.Matches = append(doc.Matches, match.Match{
			ID:          match.NewID(home, away, date, clock),
			HomeTeam:    home,
			AwayTeam:    away,
			Date:        date,
			Time:        clock,
			Competition: competition,
		})
	}

	return doc
}

// extractCompetition finds a known competition name and returns its
// canonical spelling, or "" when none appears.
func extractCompetition(text string) string {
	m := reCompetition.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	lower := strings.ToLower(m[0])
	switch {
	case strings.Contains(lower, "copa"):
		return "Copa do Brasil"
	case strings.Contains(lower, "libertadores"):
		return "Libertadores"
	case strings.Contains(lower, "sul-americana"):
		return "Sul-Americana"
	default:
		return "Brasileirão Série " + strings.ToUpper(m[1])
	}
}

func (p *Parser) parseTable(text string) *match.Document {
	doc := match.NewDocument()
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if reTableHeader.MatchString(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return doc
	}

	for _, line := range lines[start+1:] {
		m := reTableRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		doc.Standings = append(doc.Standings, standings.Row{
			Position: atoi(m[1]),
			Team:     strings.TrimSpace(m[2]),
			Points:   atoi(m[3]),
			Played:   atoi(m[4]),
			Wins:     atoi(m[5]),
			Draws:    atoi(m[6]),
			Losses:   atoi(m[7]),
		})
	}

	return doc
}
