package catalog

import (
	"fmt"
	"strings"
)

// CodeRange matches filenames containing prefix followed by a zero-padded
// number inside [Min, Max]. Prefix "T", Min 1, Max 5, Pad 2 matches
// "T01".."T05" and nothing else.
type CodeRange struct {
	Prefix string `yaml:"prefix"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
	Pad    int    `yaml:"pad"`
}

// String renders the range in the form the rules listing shows,
// e.g. "T01..T05".
func (r CodeRange) String() string {
	return fmt.Sprintf("%s%0*d..%s%0*d", r.Prefix, r.Pad, r.Min, r.Prefix, r.Pad, r.Max)
}

// Clause is a leaf predicate. Every declared condition must hold for the
// clause to hold; an absent condition constrains nothing.
type Clause struct {
	// Contains lists substrings that must all appear in the filename.
	Contains []string `yaml:"contains,omitempty"`
	// Extensions lists acceptable file extensions (with dot,
	// case-insensitive). Empty means any extension is acceptable.
	Extensions []string `yaml:"extensions,omitempty"`
	// CodeRange, when set, requires a matching range code in the filename.
	CodeRange *CodeRange `yaml:"code_range,omitempty"`
}

// Empty reports whether the clause declares no conditions at all.
func (c Clause) Empty() bool {
	return len(c.Contains) == 0 && len(c.Extensions) == 0 && c.CodeRange == nil
}

// Predicate guards a rule. It holds iff the leaf clause holds, at least one
// AnyOf clause holds (when the group is non-empty), and a model code was
// detected (when RequiresModelCode is set).
type Predicate struct {
	Clause `yaml:",inline"`
	// RequiresModelCode makes the rule conditional on a detected model
	// code. This is a matching precondition: without a model the rule is
	// simply skipped.
	RequiresModelCode bool `yaml:"requires_model_code,omitempty"`
	// AnyOf is an OR-group of leaf clauses nested under the enclosing
	// AND semantics.
	AnyOf []Clause `yaml:"any_of,omitempty"`
}

// GuaranteesModel reports whether every filename matching this predicate is
// guaranteed to carry a detected model code. Templates referencing
// {MODEL_FOLDER} are only well-formed on rules whose predicate guarantees a
// model.
func (p Predicate) GuaranteesModel() bool {
	return p.RequiresModelCode
}

// Summary renders a short human-readable description of the predicate for
// rule listings.
func (p Predicate) Summary() string {
	var parts []string
	if len(p.Contains) > 0 {
		parts = append(parts, fmt.Sprintf("contains %s", strings.Join(p.Contains, "+")))
	}
	if len(p.Extensions) > 0 {
		parts = append(parts, fmt.Sprintf("ext %s", strings.Join(p.Extensions, "|")))
	}
	if p.CodeRange != nil {
		parts = append(parts, fmt.Sprintf("code %s", p.CodeRange))
	}
	if len(p.AnyOf) > 0 {
		alts := make([]string, len(p.AnyOf))
		for i, c := range p.AnyOf {
			alts[i] = clauseSummary(c)
		}
		parts = append(parts, fmt.Sprintf("any of (%s)", strings.Join(alts, " / ")))
	}
	if p.RequiresModelCode {
		parts = append(parts, "model code required")
	}
	if len(parts) == 0 {
		return "always"
	}
	return strings.Join(parts, ", ")
}

// clauseSummary renders a leaf clause for Summary.
func clauseSummary(c Clause) string {
	var parts []string
	if len(c.Contains) > 0 {
		parts = append(parts, strings.Join(c.Contains, "+"))
	}
	if len(c.Extensions) > 0 {
		parts = append(parts, strings.Join(c.Extensions, "|"))
	}
	if c.CodeRange != nil {
		parts = append(parts, c.CodeRange.String())
	}
	if len(parts) == 0 {
		return "always"
	}
	return strings.Join(parts, " ")
}
