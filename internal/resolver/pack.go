package resolver

import (
	"strings"

	"github.com/packpath/packpath/pkg/catalog"
)

// MatchPack returns the single pack whose key tokens all appear in the
// filename. Key tokens compare as case-sensitive substrings, exactly as
// configured: no trimming, no normalization.
//
// Zero matching packs yields KindPackNotFound; more than one yields
// KindPackAmbiguous listing the conflicting pack IDs in declaration order.
func MatchPack(filename string, packs []catalog.Pack) (catalog.Pack, error) {
	var matched []catalog.Pack
	for _, p := range packs {
		if packMatches(filename, p) {
			matched = append(matched, p)
		}
	}

	switch len(matched) {
	case 0:
		return catalog.Pack{}, newError(KindPackNotFound,
			"no pack matches filename %q", filename)
	case 1:
		return matched[0], nil
	default:
		ids := make([]string, len(matched))
		for i, p := range matched {
			ids[i] = p.ID
		}
		return catalog.Pack{}, newError(KindPackAmbiguous,
			"filename %q matches multiple packs: %s", filename, strings.Join(ids, ", "))
	}
}

// packMatches reports whether every key token of the pack appears in the
// filename. A pack with no key tokens matches nothing.
func packMatches(filename string, p catalog.Pack) bool {
	if len(p.KeyTokens) == 0 {
		return false
	}
	for _, token := range p.KeyTokens {
		if !strings.Contains(filename, token) {
			return false
		}
	}
	return true
}
