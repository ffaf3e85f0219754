package checks

import (
	"fmt"
	"strings"

	"github.com/isawnyu/pleiades-quality/internal/place"
)

// namesRomanizedOnly flags places with at least one name that has a
// romanized form but no attested form in the original language and script.
// The detail lists every name of the place so editors see the full
// onomastic context.
func namesRomanizedOnly(p *place.Place) (any, bool) {
	if len(p.NamesRomanizedOnly()) == 0 {
		return nil, false
	}
	return map[string]any{"names": formatNames(p.Names)}, true
}

// missingModernName flags located places that have names but no modern one.
func missingModernName(p *place.Place) (any, bool) {
	if len(p.Names) > 0 && len(p.ModernNames()) == 0 && !p.Unlocated() {
		return nil, true
	}
	return nil, false
}

// formatNames renders names as "attested:language:rom1/rom2" strings, the
// compact form used in the CSV exports.
func formatNames(names []place.Name) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		romanized := strings.Split(n.Romanized, ",")
		for i := range romanized {
			romanized[i] = strings.TrimSpace(romanized[i])
		}
		out = append(out, fmt.Sprintf("%s:%s:%s", n.Attested, n.Language, strings.Join(romanized, "/")))
	}
	return out
}
