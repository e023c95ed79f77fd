package textparse

import "strings"

// headerWindow bounds how far the fallback scans around the
// Casa/Empate/Fora header for team labels.
const headerWindow = 5

// extractTeams finds the two team names. Primary: a "TeamA vs TeamB"
// line. Fallback: labels on the lines surrounding a Casa/Empate/Fora
// odds header.
func extractTeams(text string) (home, away string, ok bool) {
	for _, line := range strings.Split(text, "\n") {
		if m := reTeamPair.FindStringSubmatch(line); m != nil {
			home = strings.TrimSpace(m[1])
			away = strings.TrimSpace(m[2])
			if home != "" && away != "" {
				return home, away, true
			}
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !reOddsHeaderLine.MatchString(line) {
			continue
		}
		for j := i - headerWindow; j < i; j++ {
			if j < 0 || !isTeamLabel(lines[j]) {
				continue
			}
			for k := i + 1; k <= i+headerWindow && k < len(lines); k++ {
				if isTeamLabel(lines[k]) {
					return strings.TrimSpace(lines[j]), strings.TrimSpace(lines[k]), true
				}
			}
		}
	}

	return "", "", false
}

func isTeamLabel(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, word := range []string{"casa", "empate", "fora", "odds"} {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}
