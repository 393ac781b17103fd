package resolver

import (
	"strings"

	"github.com/packpath/packpath/pkg/catalog"
)

// MatchModel scans the filename for any declared model code and returns the
// best match. Absence of a model is a valid outcome, reported via the
// boolean; model detection never fails on its own.
//
// Codes compare case-insensitively as substrings. When several codes match,
// the longest wins so that a short code never shadows a longer one that
// contains it (e.g. "M2J" inside "M2JX"); equal lengths keep the code
// declared first.
func MatchModel(filename string, models []catalog.Model) (catalog.Model, bool) {
	upper := strings.ToUpper(filename)

	var best catalog.Model
	found := false
	for _, m := range models {
		if m.Code == "" {
			continue
		}
		if !strings.Contains(upper, strings.ToUpper(m.Code)) {
			continue
		}
		if !found || len(m.Code) > len(best.Code) {
			best = m
			found = true
		}
	}
	return best, found
}
