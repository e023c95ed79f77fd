package match

import (
	"github.com/lucasveiga/palpiteiro/internal/domain/headtohead"
	"github.com/lucasveiga/palpiteiro/internal/domain/markets"
	"github.com/lucasveiga/palpiteiro/internal/domain/odds"
	"github.com/lucasveiga/palpiteiro/internal/domain/standings"
	"github.com/lucasveiga/palpiteiro/internal/domain/teamstats"
)

// Unspecified is the default for string fields the parser could not
// fill.
const Unspecified = "Não especificado"

// Match identifies one game. Date and time keep the free-text shape
// they were extracted in (DD/MM/YYYY, HH:MM).
type Match struct {
	ID          string `json:"id_jogo"`
	HomeTeam    string `json:"time_casa"`
	AwayTeam    string `json:"time_visitante"`
	Date        string `json:"data"`
	Time        string `json:"hora"`
	Competition string `json:"campeonato"`
}

// Statistics is everything extracted about a single match beyond its
// identity.
type Statistics struct {
	Home       teamstats.SeasonStats `json:"time_casa"`
	Away       teamstats.SeasonStats `json:"time_visitante"`
	HeadToHead headtohead.Record     `json:"confrontos_diretos"`
	Odds       odds.Snapshot         `json:"odds"`
	Additional markets.Additional    `json:"mercados_adicionais"`
}

// Document is the persisted shape of one parse result: the matches
// found plus per-match statistics keyed by match ID. A league-table
// parse fills Standings instead.
type Document struct {
	Matches    []Match               `json:"jogos"`
	Statistics map[string]Statistics `json:"estatisticas"`
	Standings  []standings.Row       `json:"tabela_classificacao,omitempty"`
}

func NewDocument() *Document {
	return &Document{
		Matches:    []Match{},
		Statistics: map[string]Statistics{},
	}
}
