package resolver

import (
	"strings"

	"github.com/packpath/packpath/pkg/catalog"
)

// PathResult is the expanded form of a matched rule's path template.
// Parts[0] is the catalog root folder; FullPath is Parts joined with "/".
type PathResult struct {
	Parts    []string `json:"path_parts"`
	FullPath string   `json:"full_path"`
	Tree     string   `json:"tree"`
}

// ResolvePath expands the matched rule's path template into concrete folder
// segments. model is nil when no model code was detected; a template
// referencing {MODEL_FOLDER} without one is a KindModelRequiredForPath
// failure, and a placeholder missing from the folder table is
// KindUnknownPlaceholder.
//
// The filename is consulted only for {COLOR_PACK_OPTION}, which maps the CP
// code embedded in the filename onto the pack's color-pack option folder.
func ResolvePath(rule catalog.Rule, pack catalog.Pack, model *catalog.Model, filename string, snap *catalog.Snapshot) (*PathResult, error) {
	parts := make([]string, 0, len(rule.PathTemplate)+1)
	parts = append(parts, snap.RootFolder)

	for _, segment := range rule.PathTemplate {
		resolved, err := resolveSegment(segment, pack, model, filename, snap)
		if err != nil {
			return nil, err
		}
		parts = append(parts, resolved)
	}

	return &PathResult{
		Parts:    parts,
		FullPath: strings.Join(parts, "/"),
		Tree:     RenderTree(parts),
	}, nil
}

// resolveSegment expands a single template segment. Segments not of the
// form {NAME} are literals and pass through untouched.
func resolveSegment(segment string, pack catalog.Pack, model *catalog.Model, filename string, snap *catalog.Snapshot) (string, error) {
	if !isPlaceholder(segment) {
		return segment, nil
	}

	switch segment {
	case catalog.PlaceholderPackFolder:
		return pack.Folder, nil

	case catalog.PlaceholderModelFolder:
		if model == nil {
			return "", newError(KindModelRequiredForPath,
				"template segment %s requires a model code, but none was detected in %q",
				segment, filename)
		}
		return model.Folder, nil

	case catalog.PlaceholderColorPackOption:
		return colorPackOption(filename, pack, snap), nil
	}

	key := strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}")
	if name, ok := snap.FolderName(key); ok {
		return name, nil
	}
	return "", newError(KindUnknownPlaceholder,
		"path template references unknown placeholder %s", segment)
}

// isPlaceholder reports whether the segment is a {NAME} token.
func isPlaceholder(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// colorPackOption extracts the CP code from the filename (the token after
// "CP" in underscore-separated form) and maps it through the pack's
// color-pack options. Unmatched codes resolve to "Unknown" rather than
// failing, matching the declared hierarchy's catch-all option.
func colorPackOption(filename string, pack catalog.Pack, snap *catalog.Snapshot) string {
	const unknown = "Unknown"

	tokens := strings.Split(filename, "_")
	code := ""
	for i, tok := range tokens {
		if tok == "CP" && i+1 < len(tokens) {
			code = tokens[i+1]
			break
		}
	}
	code = strings.TrimSuffix(code, extensionOf(code))
	if code == "" {
		return unknown
	}

	cp, ok := snap.ColorPacks[pack.ID]
	if !ok {
		return unknown
	}
	for _, opt := range cp.Options {
		for _, pattern := range opt.FilePatterns {
			if pattern == "CP_"+code || strings.Contains(pattern, code) {
				return opt.Folder
			}
		}
	}
	return unknown
}

// RenderTree renders path segments as a linear last-child tree: the first
// segment is the unindented root and each deeper segment is indented one
// level with a connector glyph.
func RenderTree(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for i, part := range parts[1:] {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("    ", i))
		b.WriteString("└── ")
		b.WriteString(part)
	}
	return b.String()
}
