package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/packpath/packpath/pkg/catalog"
)

// writeCatalogDir writes a small catalog configuration and returns its dir.
func writeCatalogDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"packpath.yaml": `
version: "26ss.1"
root_folder: "26SS_FTW_Sell-in"
`,
		"packs.yaml": `
packs:
  - id: bright_gold
    key_tokens: ["Bright_Gold"]
    folder: "1. Bright Gold Pack"
`,
		"models.yaml": `
models:
  - code: M2J
    folder: "4. MORELIA Ⅱ Japan"
`,
		"folders.yaml": `
folders:
  KEY_VISUAL: "1. Key Visual"
  KV_PSD: "2. PSD"
`,
		"rules.yaml": `
rules:
  - id: kv_psd
    description: "Key visual working files"
    match:
      contains: ["KV"]
      extensions: [".psd"]
    path_template: ["{PACK_FOLDER}", "{KEY_VISUAL}", "{KV_PSD}"]
  - id: kv_model
    description: "Key visual per model"
    match:
      contains: ["KV"]
      extensions: [".jpg"]
      requires_model_code: true
    path_template: ["{PACK_FOLDER}", "{KEY_VISUAL}", "{MODEL_FOLDER}"]
`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommandJSON(t *testing.T) {
	dir := writeCatalogDir(t)

	out, err := execute(t, "resolve", "--config", dir, "--json", "Bright_Gold_KV_M2J.jpg")
	if err != nil {
		t.Fatalf("resolve: %v\n%s", err, out)
	}

	var result struct {
		Path struct {
			FullPath string `json:"full_path"`
		} `json:"path"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	want := "26SS_FTW_Sell-in/1. Bright Gold Pack/1. Key Visual/4. MORELIA Ⅱ Japan"
	if result.Path.FullPath != want {
		t.Errorf("full_path = %q, want %q", result.Path.FullPath, want)
	}
}

func TestResolveCommandJSONFailure(t *testing.T) {
	dir := writeCatalogDir(t)

	out, err := execute(t, "resolve", "--config", dir, "--json", "Mystery_KV.psd")
	if err == nil {
		t.Fatal("resolve expected error for unknown pack")
	}

	var payload struct {
		ErrorType string `json:"error_type"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if payload.ErrorType != "PACK_NOT_FOUND" {
		t.Errorf("error_type = %q, want PACK_NOT_FOUND", payload.ErrorType)
	}
}

func TestCheckCommandReportsFailures(t *testing.T) {
	dir := writeCatalogDir(t)

	manifest := filepath.Join(t.TempDir(), "manifest.txt")
	content := "# season batch\nBright_Gold_KV_M2J.jpg\n\nMystery_KV.psd\n"
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "check", "--config", dir, "--json", manifest)
	if err == nil {
		t.Fatal("check expected error: one manifest entry cannot resolve")
	}

	var items []batchItem
	if jsonErr := json.Unmarshal([]byte(out), &items); jsonErr != nil {
		t.Fatalf("decode output: %v\n%s", jsonErr, out)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 (comments and blanks skipped)", len(items))
	}
	if items[0].Path == "" || items[0].Error != "" {
		t.Errorf("first item should resolve: %+v", items[0])
	}
	if items[1].Kind != "PACK_NOT_FOUND" {
		t.Errorf("second item kind = %q, want PACK_NOT_FOUND", items[1].Kind)
	}
}

func TestTreeCommandCreate(t *testing.T) {
	dir := writeCatalogDir(t)
	base := t.TempDir()

	out, err := execute(t, "tree", "--config", dir, "--create", base)
	if err != nil {
		t.Fatalf("tree: %v\n%s", err, out)
	}
	if !strings.Contains(out, "26SS_FTW_Sell-in") {
		t.Errorf("tree output missing root folder:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(base, "26SS_FTW_Sell-in", "1. Bright Gold Pack")); err != nil {
		t.Errorf("expected pack directory missing: %v", err)
	}

	// Reset so later tests don't inherit the flag.
	if err := treeCmd.Flags().Set("create", ""); err != nil {
		t.Fatal(err)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	dir := writeCatalogDir(t)

	out, err := execute(t, "config", "validate", "--config", dir)
	if err != nil {
		t.Fatalf("config validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConfigValidateCommandReportsProblems(t *testing.T) {
	dir := writeCatalogDir(t)
	rules := `
rules:
  - id: bad_rule
    match:
      contains: ["KV"]
    path_template: ["{PACK_FOLDER}", "{CAROUSEL}"]
`
	if err := os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte(rules), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "validate", "--config", dir)
	if err == nil {
		t.Fatal("config validate expected error for undeclared placeholder")
	}
	if !strings.Contains(out, "{CAROUSEL}") {
		t.Errorf("output should name the offending placeholder:\n%s", out)
	}
}

func TestResolveBatchKeepsManifestOrder(t *testing.T) {
	t.Parallel()

	snap := &catalog.Snapshot{
		RootFolder: "Root",
		Packs: []catalog.Pack{
			{ID: "gold", KeyTokens: []string{"Gold"}, Folder: "Gold Pack"},
		},
		Folders: map[string]string{"KEY_VISUAL": "KV"},
		Rules: []catalog.Rule{
			{
				ID:           "any_kv",
				Match:        catalog.Predicate{Clause: catalog.Clause{Contains: []string{"KV"}}},
				PathTemplate: []string{"{PACK_FOLDER}", "{KEY_VISUAL}"},
			},
		},
	}

	names := []string{"Gold_KV_01.jpg", "Nope.jpg", "Gold_KV_02.jpg", "Gold_tech.jpg"}
	ticks := 0
	items := resolveBatch(snap, names, 3, func() { ticks++ })

	if ticks != len(names) {
		t.Errorf("ticks = %d, want %d", ticks, len(names))
	}
	for i, item := range items {
		if item.Filename != names[i] {
			t.Errorf("item %d = %q, want %q (manifest order)", i, item.Filename, names[i])
		}
	}
	if items[0].Error != "" || items[2].Error != "" {
		t.Error("KV filenames should resolve")
	}
	if items[1].Kind != "PACK_NOT_FOUND" {
		t.Errorf("items[1].Kind = %q", items[1].Kind)
	}
	if items[3].Kind != "RULE_NOT_FOUND" {
		t.Errorf("items[3].Kind = %q", items[3].Kind)
	}
}

func TestReadManifestSkipsCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "m.txt")
	content := "# header\n\nA_KV.jpg\n  \n# tail\nB_KV.psd\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := readManifest(path)
	if err != nil {
		t.Fatalf("readManifest: %v", err)
	}
	want := []string{"A_KV.jpg", "B_KV.psd"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRulesMarkdownListsRulesInOrder(t *testing.T) {
	t.Parallel()

	snap := &catalog.Snapshot{
		Rules: []catalog.Rule{
			{ID: "first", Description: "First rule", Match: catalog.Predicate{Clause: catalog.Clause{Contains: []string{"KV"}}}, PathTemplate: []string{"{PACK_FOLDER}"}},
			{ID: "second", Match: catalog.Predicate{RequiresModelCode: true}, PathTemplate: []string{"{PACK_FOLDER}", "{MODEL_FOLDER}"}},
		},
	}

	md := rulesMarkdown(snap)

	firstAt := strings.Index(md, "## 1. first")
	secondAt := strings.Index(md, "## 2. second")
	if firstAt == -1 || secondAt == -1 || secondAt < firstAt {
		t.Errorf("rules out of order:\n%s", md)
	}
	if !strings.Contains(md, "{PACK_FOLDER}/{MODEL_FOLDER}") {
		t.Errorf("markdown missing path template:\n%s", md)
	}
}
