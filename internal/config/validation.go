package config

import (
	"fmt"
	"strings"

	"github.com/packpath/packpath/pkg/catalog"
)

// Validate checks the catalog for correctness before it is handed to the
// resolution engine. Structural inconsistencies a template could only
// reveal mid-resolution (a {MODEL_FOLDER} reference on a rule that cannot
// guarantee a model, an undeclared folder placeholder) are caught here.
//
// loadedSections reports which sections came from files; section-presence
// checks only apply to sections that were actually loaded.
func Validate(snap *catalog.Snapshot, loadedSections map[string]bool) error {
	var errs []ValidationError

	errs = append(errs, validateRoot(snap)...)
	errs = append(errs, validateLoadedSections(snap, loadedSections)...)
	errs = append(errs, validatePacks(snap)...)
	errs = append(errs, validateModels(snap)...)
	errs = append(errs, validateRules(snap)...)
	errs = append(errs, validateStructure(snap)...)
	errs = append(errs, validateColorPacks(snap)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateRoot checks the catalog root fields.
func validateRoot(snap *catalog.Snapshot) []ValidationError {
	var errs []ValidationError
	if snap.RootFolder == "" {
		errs = append(errs, ValidationError{
			Field:   "root_folder",
			Message: "required field is empty; set the hierarchy root in packpath.yaml (example: root_folder: 26SS_FTW_Sell-in)",
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

// validateLoadedSections flags section files that were read but declare
// nothing. An absent file is acceptable; an empty one is an authoring
// mistake.
func validateLoadedSections(snap *catalog.Snapshot, loadedSections map[string]bool) []ValidationError {
	var errs []ValidationError

	if loadedSections["packs"] && len(snap.Packs) == 0 {
		errs = append(errs, ValidationError{
			Field:   "packs",
			Message: "packs file declares no packs",
			Wrapped: ErrInvalidConfig,
		})
	}
	if loadedSections["rules"] && len(snap.Rules) == 0 {
		errs = append(errs, ValidationError{
			Field:   "rules",
			Message: "rules file declares no rules",
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

// validatePacks checks pack identifiers and key tokens.
func validatePacks(snap *catalog.Snapshot) []ValidationError {
	var errs []ValidationError

	seen := map[string]bool{}
	for i, p := range snap.Packs {
		field := fmt.Sprintf("packs[%d]", i)
		if p.ID == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".id",
				Message: "pack identifier must not be empty",
				Wrapped: ErrInvalidConfig,
			})
		} else if seen[p.ID] {
			errs = append(errs, ValidationError{
				Field:   field + ".id",
				Message: "pack identifier declared more than once",
				Value:   p.ID,
				Wrapped: ErrDuplicateID,
			})
		}
		seen[p.ID] = true

		if len(p.KeyTokens) == 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".key_tokens",
				Message: "pack declares no key tokens and can never match a filename",
				Value:   p.ID,
				Wrapped: ErrInvalidConfig,
			})
		}
		if p.Folder == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".folder",
				Message: "pack display folder must not be empty",
				Value:   p.ID,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}

// validateModels checks model codes for presence and uniqueness.
func validateModels(snap *catalog.Snapshot) []ValidationError {
	var errs []ValidationError

	seen := map[string]bool{}
	for i, m := range snap.Models {
		field := fmt.Sprintf("models[%d]", i)
		if m.Code == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".code",
				Message: "model code must not be empty",
				Wrapped: ErrInvalidConfig,
			})
			continue
		}
		if seen[m.Code] {
			errs = append(errs, ValidationError{
				Field:   field + ".code",
				Message: "model code declared more than once",
				Value:   m.Code,
				Wrapped: ErrDuplicateID,
			})
		}
		seen[m.Code] = true
	}
	return errs
}

// validateRules checks rule identifiers, predicates, and path templates.
func validateRules(snap *catalog.Snapshot) []ValidationError {
	var errs []ValidationError

	seen := map[string]bool{}
	for i, r := range snap.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		if r.ID == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".id",
				Message: "rule identifier must not be empty",
				Wrapped: ErrInvalidConfig,
			})
		} else if seen[r.ID] {
			errs = append(errs, ValidationError{
				Field:   field + ".id",
				Message: "rule identifier declared more than once",
				Value:   r.ID,
				Wrapped: ErrDuplicateID,
			})
		}
		seen[r.ID] = true

		if len(r.PathTemplate) == 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".path_template",
				Message: "rule declares no path template",
				Value:   r.ID,
				Wrapped: ErrInvalidConfig,
			})
		}

		errs = append(errs, validateCodeRanges(field, r.Match)...)
		errs = append(errs, validateTemplate(snap, field, r)...)
	}
	return errs
}

// validateCodeRanges checks min/max ordering on every code range of the
// predicate.
func validateCodeRanges(field string, p catalog.Predicate) []ValidationError {
	var errs []ValidationError

	check := func(where string, cr *catalog.CodeRange) {
		if cr == nil {
			return
		}
		if cr.Min > cr.Max {
			errs = append(errs, ValidationError{
				Field:   where,
				Message: "code range min exceeds max",
				Value:   fmt.Sprintf("min=%d max=%d", cr.Min, cr.Max),
				Wrapped: ErrInvalidConfig,
			})
		}
		if cr.Pad <= 0 {
			errs = append(errs, ValidationError{
				Field:   where,
				Message: "code range pad must be positive",
				Value:   cr.Pad,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	check(field+".match.code_range", p.CodeRange)
	for i, c := range p.AnyOf {
		check(fmt.Sprintf("%s.match.any_of[%d].code_range", field, i), c.CodeRange)
	}
	return errs
}

// validateTemplate checks every placeholder a rule template references
// against the catalog: folder placeholders must be declared, and
// {MODEL_FOLDER} is only reachable from rules whose predicate guarantees a
// detected model.
func validateTemplate(snap *catalog.Snapshot, field string, r catalog.Rule) []ValidationError {
	var errs []ValidationError

	for i, segment := range r.PathTemplate {
		if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
			continue
		}
		segField := fmt.Sprintf("%s.path_template[%d]", field, i)

		switch segment {
		case catalog.PlaceholderPackFolder, catalog.PlaceholderColorPackOption:
			continue
		case catalog.PlaceholderModelFolder:
			if !r.Match.GuaranteesModel() {
				errs = append(errs, ValidationError{
					Field:   segField,
					Message: "template references {MODEL_FOLDER} but the rule's predicate does not require a model code",
					Value:   r.ID,
					Wrapped: ErrBadTemplate,
				})
			}
		default:
			key := strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}")
			if _, ok := snap.Folders[key]; !ok {
				errs = append(errs, ValidationError{
					Field:   segField,
					Message: "template references a folder placeholder absent from the folder table",
					Value:   segment,
					Wrapped: ErrBadTemplate,
				})
			}
		}
	}
	return errs
}

// validateStructure checks that per-pack structure entries reference
// declared packs and model codes.
func validateStructure(snap *catalog.Snapshot) []ValidationError {
	var errs []ValidationError

	for packID, ps := range snap.Structure {
		if _, ok := snap.PackByID(packID); !ok {
			errs = append(errs, ValidationError{
				Field:   "structure." + packID,
				Message: "structure entry references an undeclared pack",
				Value:   packID,
				Wrapped: ErrInvalidConfig,
			})
		}
		for _, group := range [][]string{ps.KeyVisual, ps.TechShots, ps.Supporting} {
			for _, code := range group {
				if _, ok := snap.ModelByCode(code); !ok {
					errs = append(errs, ValidationError{
						Field:   "structure." + packID,
						Message: "structure entry references an undeclared model code",
						Value:   code,
						Wrapped: ErrInvalidConfig,
					})
				}
			}
		}
	}
	return errs
}

// validateColorPacks checks that color-pack entries reference declared packs.
func validateColorPacks(snap *catalog.Snapshot) []ValidationError {
	var errs []ValidationError

	for packID := range snap.ColorPacks {
		if _, ok := snap.PackByID(packID); !ok {
			errs = append(errs, ValidationError{
				Field:   "color_packs." + packID,
				Message: "color pack entry references an undeclared pack",
				Value:   packID,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}
