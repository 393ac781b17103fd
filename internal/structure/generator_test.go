package structure

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/packpath/packpath/pkg/catalog"
)

// structureSnapshot builds a catalog with two packs, one of them
// color-pack-only.
func structureSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		RootFolder: "26SS_FTW_Sell-in",
		Packs: []catalog.Pack{
			{ID: "bright_gold", KeyTokens: []string{"Bright_Gold"}, Folder: "1. Bright Gold Pack", HasColorPack: true},
			{ID: "sala", KeyTokens: []string{"SALA"}, Folder: "3. SALA Pack", HasColorPack: true, ColorPackOnly: true},
		},
		Models: []catalog.Model{
			{Code: "M2J", Folder: "4. MORELIA Ⅱ Japan"},
			{Code: "M2JX", Folder: "5. MORELIA Ⅱ Japan XSE"},
		},
		Folders: map[string]string{
			"KEY_VISUAL": "1. Key Visual",
			"TECH_SHOTS": "2. Tech Shots",
			"SUPPORTING": "3. Supporting Images",
		},
		ColorPacks: map[string]catalog.ColorPack{
			"bright_gold": {Options: []catalog.ColorPackOption{
				{Folder: "Option 1 (EMEA)", FilePatterns: []string{"CP_EMEA"}},
			}},
		},
		Structure: map[string]catalog.PackStructure{
			"bright_gold": {
				KeyVisual:  []string{"M2J", "M2JX"},
				TechShots:  []string{"M2J"},
				Supporting: []string{"M2JX"},
			},
		},
	}
}

func TestGenerateHierarchy(t *testing.T) {
	t.Parallel()

	root := Generate(structureSnapshot())

	if root.Name != "26SS_FTW_Sell-in" {
		t.Errorf("root = %q", root.Name)
	}
	if len(root.Children) != 2 {
		t.Fatalf("pack count = %d, want 2", len(root.Children))
	}

	gold := root.Children[0]
	if gold.Name != "1. Bright Gold Pack" {
		t.Errorf("pack folder = %q", gold.Name)
	}
	// Key Visual, Tech Shots, Supporting Images
	if len(gold.Children) != 3 {
		t.Fatalf("gold categories = %d, want 3", len(gold.Children))
	}

	kv := gold.Children[0]
	// two model folders + Color Pack
	if len(kv.Children) != 3 {
		t.Fatalf("key visual children = %d, want 3", len(kv.Children))
	}
	if kv.Children[0].Name != "4. MORELIA Ⅱ Japan" {
		t.Errorf("first model folder = %q", kv.Children[0].Name)
	}
	if len(kv.Children[0].Children) != 1 || kv.Children[0].Children[0].Name != "PSD" {
		t.Error("model folder should contain a PSD working folder")
	}
	if last := kv.Children[2]; last.Name != "Color Pack" || len(last.Children) != 1 {
		t.Errorf("color pack branch = %+v", last)
	}
}

func TestGenerateColorPackOnlySkipsOtherCategories(t *testing.T) {
	t.Parallel()

	root := Generate(structureSnapshot())
	sala := root.Children[1]

	if len(sala.Children) != 1 {
		t.Fatalf("SALA categories = %d, want only key visual", len(sala.Children))
	}
	if sala.Children[0].Name != "1. Key Visual" {
		t.Errorf("SALA category = %q", sala.Children[0].Name)
	}
}

func TestFlatPathsExcludeRoot(t *testing.T) {
	t.Parallel()

	paths := FlatPaths(structureSnapshot())

	for _, p := range paths {
		if strings.HasPrefix(p, "26SS_FTW_Sell-in") {
			t.Errorf("flat path %q should be relative to the root", p)
		}
	}
	if !slices.Contains(paths, "1. Bright Gold Pack/1. Key Visual/4. MORELIA Ⅱ Japan/PSD") {
		t.Errorf("missing expected deep path; got %v", paths)
	}
	if !slices.Contains(paths, "1. Bright Gold Pack/1. Key Visual/Color Pack/Option 1 (EMEA)") {
		t.Errorf("missing color pack option path; got %v", paths)
	}
}

func TestRenderConnectors(t *testing.T) {
	t.Parallel()

	root := dir("root",
		dir("a", dir("a1")),
		dir("b"),
	)

	want := strings.Join([]string{
		"root",
		"├── a",
		"│   └── a1",
		"└── b",
	}, "\n")

	if got := Render(root); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestMaterializeCreatesAndReuses(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	root := dir("Root", dir("Child A"), dir("Child B"))

	created, err := Materialize(root, base)
	if err != nil {
		t.Fatalf("Materialize() unexpected error: %v", err)
	}
	if created != 3 {
		t.Errorf("created = %d, want 3", created)
	}
	if _, err := os.Stat(filepath.Join(base, "Root", "Child A")); err != nil {
		t.Errorf("expected directory missing: %v", err)
	}

	// Second run creates nothing.
	created, err = Materialize(root, base)
	if err != nil {
		t.Fatalf("Materialize() second run error: %v", err)
	}
	if created != 0 {
		t.Errorf("second run created = %d, want 0", created)
	}
}

func TestMaterializeTreatsNFDNamesAsExisting(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	nfd := "Cafe\u0301" // decomposed form, as macOS volumes report it
	if err := os.Mkdir(filepath.Join(base, nfd), 0o755); err != nil {
		t.Fatal(err)
	}

	root := dir("Caf\u00e9") // precomposed spelling of the same name
	created, err := Materialize(root, base)
	if err != nil {
		t.Fatalf("Materialize() unexpected error: %v", err)
	}
	if created != 0 {
		t.Errorf("created = %d, want 0: NFD directory should be reused", created)
	}
}
