package textparse

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ContentType
	}{
		{
			"winner prompt wins",
			"Corinthians vs Sport\nQuem será o vencedor?",
			ContentMatchReport,
		},
		{
			"head to head header wins",
			"CONFRONTO DIRETO\n2 jogos",
			ContentMatchReport,
		},
		{
			"matches today with many separators",
			"FUTEBOL HOJE\n" + strings.Repeat("TimeA vs TimeB\n", 5),
			ContentMatchList,
		},
		{
			"matches today with few separators is not a list",
			"FUTEBOL HOJE\nTimeA vs TimeB",
			ContentUnrecognized,
		},
		{
			"standings header plus table row",
			"CLASSIFICAÇÕES NESTA COMPETIÇÃO\nPosição Time P J V E D\n1 Flamengo 10 4 3 1 0",
			ContentLeagueTable,
		},
		{
			"separator and datetime with few vs",
			"Corinthians vs Sport\n19/04/2025 - 16:00",
			ContentMatchReport,
		},
		{
			"separator and datetime with many vs",
			strings.Repeat("TimeA vs TimeB\n20/04/2025 - 18:00\n", 5),
			ContentMatchList,
		},
		{
			"random prose",
			"O tempo estará nublado amanhã na capital paulista.",
			ContentUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(Normalize(tt.text)); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}
