package match

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/lucasveiga/palpiteiro/internal/platform/textnorm"
)

// NewID derives the stable identifier for a match. Team names are
// slugged, date and time are reduced to digits, and the identifier is
// "<home>_<away>_" plus the first 8 hex characters of the MD5 of the
// normalized concatenation. Identical normalized inputs always
// produce the identical ID.
func NewID(homeTeam, awayTeam, date, kickoff string) string {
	home := textnorm.Slug(homeTeam)
	away := textnorm.Slug(awayTeam)
	day := digitsOnly(date)
	hour := digitsOnly(kickoff)

	sum := md5.Sum([]byte(home + "_" + away + "_" + day + "_" + hour))
	return home + "_" + away + "_" + hex.EncodeToString(sum[:])[:8]
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
