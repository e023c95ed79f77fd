package textparse

import "regexp"

// Extraction patterns over normalized text. Each extractor tries its
// primary pattern first and falls back in order.
var (
	// Classification signals.
	reWinnerPrompt    = regexp.MustCompile(`(?i)Quem será o vencedor\?`)
	reHeadToHead      = regexp.MustCompile(`(?i)CONFRONTO DIRETO`)
	reMatchesToday    = regexp.MustCompile(`(?i)JOGOS DISPONÍVEIS|FUTEBOL HOJE`)
	reStandingsHeader = regexp.MustCompile(`(?i)CLASSIFICAÇÕES?|TABELA`)
	reSeparatorToken  = regexp.MustCompile(`(?i)vs`)

	// Team pair.
	reTeamPair       = regexp.MustCompile(`([A-Za-zÀ-ÖØ-öø-ÿ][A-Za-zÀ-ÖØ-öø-ÿ\s-]*?)\s+vs\s+([A-Za-zÀ-ÖØ-öø-ÿ][A-Za-zÀ-ÖØ-öø-ÿ\s-]*)`)
	reOddsHeaderLine = regexp.MustCompile(`(?i)Casa\s+Empate\s+Fora`)

	// Date and time, three fallback stages.
	reDayMonAbbrev = regexp.MustCompile(`(?i)(\d{1,2})\s+([a-zà-ÿ]{3})\s+-\s+(\d{1,2}):(\d{2})`)
	reFullDate     = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`)
	reClockTime    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	reDayMonthYear = regexp.MustCompile(`(?i)(\d{1,2})\s+([a-zà-ÿ]+)\s+(\d{4})\s+-\s+(\d{1,2}):(\d{2})`)
	reDateAndTime  = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+-\s+(\d{1,2}:\d{2})`)

	// Competitions recognized by name. Site headers shout, so the
	// match is case-insensitive and canonicalized afterwards.
	reCompetition = regexp.MustCompile(`(?i)Brasileirão\s+Série\s+([A-Z])|Copa\s+do\s+Brasil|Libertadores|Sul-Americana`)

	// League table.
	reTableHeader = regexp.MustCompile(`Posição\s+Time\s+P\s+J\s+V\s+E\s+D`)
	reTableRow    = regexp.MustCompile(`(\d+)\s+([A-Za-zÀ-ÖØ-öø-ÿ][\wÀ-ÖØ-öø-ÿ .-]*?)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)`)

	// Streaks of identical results.
	reStreak = regexp.MustCompile(`(?i)Sequência de (Vitórias|Empates|Derrotas)[^0-9]*(\d+)`)

	// Head-to-head.
	reH2HCount   = regexp.MustCompile(`(?is)CONFRONTO DIRETO.*?(\d+)\s+jogo`)
	reH2HFixture = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+([\wÀ-ÖØ-öø-ÿ]+)\s+(\d+)-(\d+)\s+([\wÀ-ÖØ-öø-ÿ]+)`)

	// Odds markets.
	reOddsResult    = regexp.MustCompile(`(?i)Casa\s+Empate\s+Fora\s+(\d+\.\d+)\s+(\d+\.\d+)\s+(\d+\.\d+)`)
	reDecimal       = regexp.MustCompile(`\d+\.\d+`)
	reOddsOverUnder = regexp.MustCompile(`(?i)Mais/Menos de 2\.5 gols\s+(\d+\.\d+)\s+(\d+\.\d+)`)
	reOddsOverAlt   = regexp.MustCompile(`(?i)\+/- 2\.5\s+(\d+\.\d+)\s+(\d+\.\d+)`)
	reOddsBothScore = regexp.MustCompile(`(?i)Ambas as equipas marcam\s+(\d+\.\d+)\s+(\d+\.\d+)`)

	// Corner and card averages, one value per side.
	reCornerAvg      = regexp.MustCompile(`(?i)Média de escanteios[^0-9]*(\d+\.\d+)[^0-9]*(\d+\.\d+)`)
	reYellowCardAvg  = regexp.MustCompile(`(?i)Média de cartões amarelos[^0-9]*(\d+\.\d+)[^0-9]*(\d+\.\d+)`)
	reGoalsScoredAvg = regexp.MustCompile(`(?i)Média de gols marcados[^0-9]*(\d+\.\d+)[^0-9]*(\d+\.\d+)`)
	reGoalsTakenAvg  = regexp.MustCompile(`(?i)Média de gols sofridos[^0-9]*(\d+\.\d+)[^0-9]*(\d+\.\d+)`)
)

var monthAbbrevs = map[string]string{
	"jan": "01", "fev": "02", "mar": "03", "abr": "04",
	"mai": "05", "jun": "06", "jul": "07", "ago": "08",
	"set": "09", "out": "10", "nov": "11", "dez": "12",
}

var monthNames = map[string]string{
	"janeiro": "01", "fevereiro": "02", "março": "03", "abril": "04",
	"maio": "05", "junho": "06", "julho": "07", "agosto": "08",
	"setembro": "09", "outubro": "10", "novembro": "11", "dezembro": "12",
}
