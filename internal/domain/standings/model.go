package standings

// Row is one line of a league table.
type Row struct {
	Position int    `json:"posicao"`
	Team     string `json:"time"`
	Points   int    `json:"pontos"`
	Played   int    `json:"jogos"`
	Wins     int    `json:"vitorias"`
	Draws    int    `json:"empates"`
	Losses   int    `json:"derrotas"`
}
