package textparse

// ContentType labels what kind of page a pasted text came from.
type ContentType string

const (
	ContentMatchReport  ContentType = "jogo_especifico"
	ContentMatchList    ContentType = "lista_jogos"
	ContentLeagueTable  ContentType = "tabela_classificacao"
	ContentUnrecognized ContentType = "desconhecido"
)

// separatorLimit is the highest "vs" count still read as a single
// match report rather than a list.
const separatorLimit = 3

// Classify decides the content type of normalized text. Strong-signal
// section headers are checked before the weaker token-count
// heuristics; the first rule that matches wins.
func Classify(text string) ContentType {
	if reWinnerPrompt.MatchString(text) || reHeadToHead.MatchString(text) {
		return ContentMatchReport
	}

	separators := len(reSeparatorToken.FindAllString(text, -1))

	if reMatchesToday.MatchString(text) && separators > separatorLimit {
		return ContentMatchList
	}

	if reStandingsHeader.MatchString(text) && reTableHeader.MatchString(text) {
		return ContentLeagueTable
	}

	if reTeamPair.MatchString(text) && reDateAndTime.MatchString(text) {
		if separators <= separatorLimit {
			return ContentMatchReport
		}
		return ContentMatchList
	}

	return ContentUnrecognized
}
