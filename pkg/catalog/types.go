package catalog

// Placeholder tokens resolved from pack and model context rather than the
// folder-name table.
const (
	PlaceholderPackFolder      = "{PACK_FOLDER}"
	PlaceholderModelFolder     = "{MODEL_FOLDER}"
	PlaceholderColorPackOption = "{COLOR_PACK_OPTION}"
)

// Pack is a named asset collection identified by a set of required filename
// substrings. A filename belongs to a pack iff every key token appears in it
// verbatim (case-sensitive, no normalization).
type Pack struct {
	ID        string   `yaml:"id"`
	KeyTokens []string `yaml:"key_tokens"`
	Folder    string   `yaml:"folder"`
	// HasColorPack adds a Color Pack branch under the pack's key-visual
	// category in the generated hierarchy.
	HasColorPack bool `yaml:"has_color_pack"`
	// ColorPackOnly suppresses the tech-shots and supporting categories
	// for packs that ship color-pack assets exclusively.
	ColorPackOnly bool `yaml:"color_pack_only"`
}

// Model identifies a product variant by a short code (e.g. "M2J") found as a
// substring of the filename.
type Model struct {
	Code   string `yaml:"code"`
	Folder string `yaml:"folder"`
	Order  int    `yaml:"order"`
}

// Rule is an ordered, predicate-guarded mapping from filename shape to a
// path template. Slice position in the catalog is the rule's priority.
type Rule struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Match       Predicate `yaml:"match"`
	// PathTemplate is an ordered list of path segments, each either a
	// literal display string or a {PLACEHOLDER} token.
	PathTemplate []string `yaml:"path_template"`
}

// ColorPackOption maps filename CP codes onto a color-pack option folder.
type ColorPackOption struct {
	Folder       string   `yaml:"folder"`
	FilePatterns []string `yaml:"file_patterns"`
}

// ColorPack describes the color-pack options available to a single pack.
type ColorPack struct {
	Options []ColorPackOption `yaml:"options"`
}

// PackStructure lists which model codes appear under each category of a
// pack's generated hierarchy.
type PackStructure struct {
	KeyVisual  []string `yaml:"key_visual"`
	TechShots  []string `yaml:"tech_shots"`
	Supporting []string `yaml:"supporting"`
}

// Snapshot is the complete, immutable catalog a resolution runs against.
type Snapshot struct {
	Version    string
	RootFolder string
	Packs      []Pack
	Models     []Model
	// Folders maps placeholder keys (without braces) to display names,
	// e.g. "KEY_VISUAL" -> "1. Key Visual".
	Folders map[string]string
	Rules   []Rule
	// ColorPacks and Structure are keyed by pack ID.
	ColorPacks map[string]ColorPack
	Structure  map[string]PackStructure
}

// ModelByCode returns the model with the given code, or false when the code
// is not declared.
func (s *Snapshot) ModelByCode(code string) (Model, bool) {
	for _, m := range s.Models {
		if m.Code == code {
			return m, true
		}
	}
	return Model{}, false
}

// PackByID returns the pack with the given identifier, or false when the
// identifier is not declared.
func (s *Snapshot) PackByID(id string) (Pack, bool) {
	for _, p := range s.Packs {
		if p.ID == id {
			return p, true
		}
	}
	return Pack{}, false
}

// FolderName resolves a placeholder key (without braces) to its display
// name. The second return value reports whether the key is declared.
func (s *Snapshot) FolderName(key string) (string, bool) {
	name, ok := s.Folders[key]
	return name, ok
}
