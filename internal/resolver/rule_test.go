package resolver

import (
	"testing"

	"github.com/packpath/packpath/pkg/catalog"
)

func TestMatchRuleFirstMatchWins(t *testing.T) {
	t.Parallel()

	// Both rules hold for the filename; the one declared first is
	// authoritative.
	rules := []catalog.Rule{
		{ID: "broad", Match: catalog.Predicate{Clause: catalog.Clause{Contains: []string{"KV"}}}},
		{ID: "narrow", Match: catalog.Predicate{Clause: catalog.Clause{Contains: []string{"KV", "16x9"}}}},
	}

	r, err := MatchRule("26SS_KV_16x9.jpg", false, rules)
	if err != nil {
		t.Fatalf("MatchRule() unexpected error: %v", err)
	}
	if r.ID != "broad" {
		t.Errorf("rule = %q, want broad (lowest index)", r.ID)
	}
}

func TestMatchRuleNotFound(t *testing.T) {
	t.Parallel()

	rules := []catalog.Rule{
		{ID: "kv", Match: catalog.Predicate{Clause: catalog.Clause{Contains: []string{"KV"}}}},
	}

	_, err := MatchRule("26SS_Carousel_1x1.jpg", false, rules)
	if err == nil {
		t.Fatal("MatchRule() expected error")
	}
	if kind, _ := KindOf(err); kind != KindRuleNotFound {
		t.Errorf("kind = %v, want %v", kind, KindRuleNotFound)
	}
}

func TestMatchRuleModelRequirementIsAPrecondition(t *testing.T) {
	t.Parallel()

	rules := []catalog.Rule{
		{ID: "needs_model", Match: catalog.Predicate{
			Clause:            catalog.Clause{Contains: []string{"KV"}},
			RequiresModelCode: true,
		}},
		{ID: "fallback", Match: catalog.Predicate{Clause: catalog.Clause{Contains: []string{"KV"}}}},
	}

	// Without a model the first rule is skipped, not an error.
	r, err := MatchRule("26SS_KV_16x9.jpg", false, rules)
	if err != nil {
		t.Fatalf("MatchRule() unexpected error: %v", err)
	}
	if r.ID != "fallback" {
		t.Errorf("rule = %q, want fallback", r.ID)
	}

	// With a model the first rule wins again.
	r, err = MatchRule("26SS_KV_16x9.jpg", true, rules)
	if err != nil {
		t.Fatalf("MatchRule() unexpected error: %v", err)
	}
	if r.ID != "needs_model" {
		t.Errorf("rule = %q, want needs_model", r.ID)
	}
}

func TestMatchRuleExtensionsCaseInsensitive(t *testing.T) {
	t.Parallel()

	rules := []catalog.Rule{
		{ID: "psd", Match: catalog.Predicate{Clause: catalog.Clause{Extensions: []string{".psd"}}}},
	}

	if _, err := MatchRule("26SS_KV.PSD", false, rules); err != nil {
		t.Errorf("MatchRule() should accept .PSD for declared .psd: %v", err)
	}
	if _, err := MatchRule("26SS_KV.jpg", false, rules); err == nil {
		t.Error("MatchRule() should reject .jpg for declared .psd")
	}
}

func TestMatchRuleAbsentExtensionsAcceptsAny(t *testing.T) {
	t.Parallel()

	rules := []catalog.Rule{
		{ID: "kv", Match: catalog.Predicate{Clause: catalog.Clause{Contains: []string{"KV"}}}},
	}

	for _, name := range []string{"26SS_KV.jpg", "26SS_KV.mov", "26SS_KV"} {
		if _, err := MatchRule(name, false, rules); err != nil {
			t.Errorf("MatchRule(%q) unexpected error: %v", name, err)
		}
	}
}

func TestMatchRuleAnyOfGroup(t *testing.T) {
	t.Parallel()

	rules := []catalog.Rule{
		{ID: "mixed", Match: catalog.Predicate{
			Clause: catalog.Clause{Extensions: []string{".jpg"}},
			AnyOf: []catalog.Clause{
				{Contains: []string{"Carousel"}},
				{CodeRange: &catalog.CodeRange{Prefix: "S", Min: 1, Max: 3, Pad: 2}},
			},
		}},
	}

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"first alternative holds", "26SS_Carousel_1x1.jpg", false},
		{"second alternative holds", "26SS_S02_1x1.jpg", false},
		{"no alternative holds", "26SS_KV_1x1.jpg", true},
		{"alternative holds but AND clause fails", "26SS_Carousel_1x1.psd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := MatchRule(tt.filename, false, rules)
			if tt.wantErr && err == nil {
				t.Errorf("MatchRule(%q) expected error", tt.filename)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("MatchRule(%q) unexpected error: %v", tt.filename, err)
			}
		})
	}
}

func TestCodeRangeBoundaries(t *testing.T) {
	t.Parallel()

	r := catalog.CodeRange{Prefix: "T", Min: 1, Max: 5, Pad: 2}

	tests := []struct {
		filename string
		want     bool
	}{
		{"26SS_T01_4x5.jpg", true},
		{"26SS_T02_4x5.jpg", true},
		{"26SS_T05_4x5.jpg", true},
		{"26SS_T00_4x5.jpg", false},
		{"26SS_T06_4x5.jpg", false},
		{"26SS_T1_4x5.jpg", false},
		{"26SS_t03_4x5.jpg", true},
		{"26SS_KV_4x5.jpg", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()

			if got := codeRangeMatches(tt.filename, r); got != tt.want {
				t.Errorf("codeRangeMatches(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtensionOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"a_KV_16x9.jpg", ".jpg"},
		{"a_KV_16x9.PSD", ".psd"},
		{"archive.tar.gz", ".gz"},
		{"noextension", ""},
	}

	for _, tt := range tests {
		if got := extensionOf(tt.filename); got != tt.want {
			t.Errorf("extensionOf(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
