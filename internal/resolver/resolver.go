package resolver

import (
	"github.com/packpath/packpath/pkg/catalog"
)

// PackSummary identifies the matched pack in a resolution result.
type PackSummary struct {
	ID     string `json:"id"`
	Folder string `json:"folder"`
}

// ModelSummary identifies the detected model in a resolution result.
type ModelSummary struct {
	Code   string `json:"code"`
	Folder string `json:"folder"`
}

// RuleSummary identifies the matched rule in a resolution result.
type RuleSummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Result is a successful resolution. Model is nil when the filename carries
// no detectable model code. Results are created fresh per call and share no
// state.
type Result struct {
	Filename string        `json:"filename"`
	Pack     PackSummary   `json:"pack"`
	Model    *ModelSummary `json:"model"`
	Rule     RuleSummary   `json:"rule"`
	Path     *PathResult   `json:"path"`
}

// Resolve runs the full pipeline for one filename: pack matching, model
// detection, rule matching, path expansion. It short-circuits on the first
// failure and returns a classified *Error; it never returns a partial
// result. The snapshot is read-only throughout.
func Resolve(filename string, snap *catalog.Snapshot) (*Result, error) {
	pack, err := MatchPack(filename, snap.Packs)
	if err != nil {
		return nil, err
	}

	model, hasModel := MatchModel(filename, snap.Models)

	rule, err := MatchRule(filename, hasModel, snap.Rules)
	if err != nil {
		return nil, err
	}

	var modelRef *catalog.Model
	var modelSummary *ModelSummary
	if hasModel {
		modelRef = &model
		modelSummary = &ModelSummary{Code: model.Code, Folder: model.Folder}
	}

	path, err := ResolvePath(rule, pack, modelRef, filename, snap)
	if err != nil {
		return nil, err
	}

	return &Result{
		Filename: filename,
		Pack:     PackSummary{ID: pack.ID, Folder: pack.Folder},
		Model:    modelSummary,
		Rule:     RuleSummary{ID: rule.ID, Description: rule.Description},
		Path:     path,
	}, nil
}
