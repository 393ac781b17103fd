package resolver

import (
	"strings"

	"github.com/packpath/packpath/pkg/catalog"
)

// MatchRule evaluates the rules in declaration order and returns the first
// whose predicate holds for the filename. hasModel reports whether model
// detection found a code; rules with RequiresModelCode are skipped without
// it.
//
// Evaluation short-circuits at the first true predicate: declaration order
// is the rule priority. No rule matching yields KindRuleNotFound.
func MatchRule(filename string, hasModel bool, rules []catalog.Rule) (catalog.Rule, error) {
	for _, r := range rules {
		if predicateHolds(filename, hasModel, r.Match) {
			return r, nil
		}
	}
	return catalog.Rule{}, newError(KindRuleNotFound,
		"no rule matches filename %q", filename)
}

// predicateHolds evaluates a full predicate: the leaf clause, the anyOf
// group (at least one member when non-empty), and the model requirement.
func predicateHolds(filename string, hasModel bool, p catalog.Predicate) bool {
	if !clauseHolds(filename, p.Clause) {
		return false
	}
	if len(p.AnyOf) > 0 {
		matched := false
		for _, c := range p.AnyOf {
			if clauseHolds(filename, c) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if p.RequiresModelCode && !hasModel {
		return false
	}
	return true
}

// clauseHolds evaluates a leaf clause. Extensions and contains compare
// case-insensitively; pack key tokens are the only case-sensitive match in
// the engine.
func clauseHolds(filename string, c catalog.Clause) bool {
	if len(c.Extensions) > 0 {
		ext := extensionOf(filename)
		ok := false
		for _, allowed := range c.Extensions {
			if ext == strings.ToLower(allowed) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(c.Contains) > 0 {
		lower := strings.ToLower(filename)
		for _, sub := range c.Contains {
			if !strings.Contains(lower, strings.ToLower(sub)) {
				return false
			}
		}
	}

	if c.CodeRange != nil && !codeRangeMatches(filename, *c.CodeRange) {
		return false
	}

	return true
}

// codeRangeMatches reports whether the filename contains the range prefix
// followed by exactly Pad digits whose value lies in [Min, Max]. The prefix
// compares case-insensitively. Every occurrence of the prefix is tried.
func codeRangeMatches(filename string, r catalog.CodeRange) bool {
	if r.Pad <= 0 {
		return false
	}
	upper := strings.ToUpper(filename)
	prefix := strings.ToUpper(r.Prefix)

	for i := 0; i+len(prefix)+r.Pad <= len(upper); i++ {
		if upper[i:i+len(prefix)] != prefix {
			continue
		}
		n, ok := parseDigits(upper[i+len(prefix) : i+len(prefix)+r.Pad])
		if ok && n >= r.Min && n <= r.Max {
			return true
		}
	}
	return false
}

// parseDigits parses a run of ASCII digits; ok is false when any byte is
// not a digit.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// extensionOf returns the lowercased extension including the dot, or ""
// when the filename has none.
func extensionOf(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}
