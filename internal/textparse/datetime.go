package textparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// extractDateTime resolves the kickoff date and time through three
// fallback stages: "DD mon - HH:MM" with an abbreviated Portuguese
// month, a literal DD/MM/YYYY date with any nearby clock time, and a
// header-style "DD monthname YYYY - HH:MM". The reference time
// supplies the year for the abbreviated form.
func extractDateTime(text string, ref time.Time) (date, clock string, ok bool) {
	if m := reDayMonAbbrev.FindStringSubmatch(text); m != nil {
		if month, found := monthAbbrevs[strings.ToLower(m[2])]; found {
			date = fmt.Sprintf("%s/%s/%d", pad2(m[1]), month, ref.Year())
			clock = pad2(m[3]) + ":" + m[4]
			return date, clock, true
		}
	}

	if m := reFullDate.FindStringSubmatch(text); m != nil {
		if t := reClockTime.FindStringSubmatch(text); t != nil {
			return m[1], pad2(t[1]) + ":" + t[2], true
		}
	}

	if m := reDayMonthYear.FindStringSubmatch(text); m != nil {
		name := strings.ToLower(m[2])
		for full, month := range monthNames {
			if strings.Contains(full, name) {
				date = fmt.Sprintf("%s/%s/%s", pad2(m[1]), month, m[3])
				clock = pad2(m[4]) + ":" + m[5]
				return date, clock, true
			}
		}
	}

	return "", "", false
}

func pad2(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%02d", n)
}
