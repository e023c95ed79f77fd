package textparse

import (
	"regexp"
	"strings"

	"github.com/lucasveiga/palpiteiro/internal/platform/textnorm"
)

var lineBreakRuns = regexp.MustCompile(`[\r\n]+`)

// Normalize flattens copy-paste artifacts so the extraction patterns
// can rely on single spaces and single newlines. Empty input yields
// empty output.
func Normalize(text string) string {
	text = lineBreakRuns.ReplaceAllString(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(textnorm.CollapseSpaces(line))
	}
	return strings.Join(lines, "\n")
}
