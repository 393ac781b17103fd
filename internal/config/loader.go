package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/packpath/packpath/pkg/catalog"
)

// Loader reads the catalog from a directory of YAML files: a root
// packpath.yaml plus per-section include files. It is thread-safe via
// sync.Mutex.
type Loader struct {
	mu             sync.Mutex
	loadedSections map[string]bool
	sectionErr     error
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// includes names the per-section files referenced by the root file.
// Empty entries fall back to compiled defaults.
type includes struct {
	Packs      string `yaml:"packs"`
	Models     string `yaml:"models"`
	Folders    string `yaml:"folders"`
	Rules      string `yaml:"rules"`
	ColorPacks string `yaml:"color_packs"`
	Structure  string `yaml:"structure"`
}

// rootFile is the catalog entry point.
type rootFile struct {
	Version    string   `yaml:"version"`
	RootFolder string   `yaml:"root_folder"`
	Includes   includes `yaml:"includes"`
}

type packsFile struct {
	Packs []catalog.Pack `yaml:"packs"`
}

type modelsFile struct {
	Models []catalog.Model `yaml:"models"`
}

type foldersFile struct {
	Folders map[string]string `yaml:"folders"`
}

type rulesFile struct {
	Rules []catalog.Rule `yaml:"rules"`
}

type colorPacksFile struct {
	ColorPacks map[string]catalog.ColorPack `yaml:"color_packs"`
}

type structureFile struct {
	Structure map[string]catalog.PackStructure `yaml:"structure"`
}

// Load reads the full catalog from the given directory and returns it as a
// fresh Snapshot. The root file is required; section files that are missing
// load as empty sections with a warning, and validation decides whether
// that is acceptable. The returned Snapshot is never mutated afterwards.
func (l *Loader) Load(configDir string) (*catalog.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	l.sectionErr = nil

	dir := filepath.Clean(configDir)
	rootPath := filepath.Join(dir, RootFileName)

	var root rootFile
	if err := readYAML(rootPath, &root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, rootPath)
		}
		return nil, err
	}
	l.loadedSections["root"] = true

	inc := root.Includes
	def := defaultIncludes()
	if inc.Packs == "" {
		inc.Packs = def.Packs
	}
	if inc.Models == "" {
		inc.Models = def.Models
	}
	if inc.Folders == "" {
		inc.Folders = def.Folders
	}
	if inc.Rules == "" {
		inc.Rules = def.Rules
	}
	if inc.ColorPacks == "" {
		inc.ColorPacks = def.ColorPacks
	}
	if inc.Structure == "" {
		inc.Structure = def.Structure
	}

	snap := &catalog.Snapshot{
		Version:    root.Version,
		RootFolder: root.RootFolder,
		Folders:    map[string]string{},
		ColorPacks: map[string]catalog.ColorPack{},
		Structure:  map[string]catalog.PackStructure{},
	}

	var pf packsFile
	if l.loadSection(dir, inc.Packs, "packs", &pf) {
		snap.Packs = pf.Packs
	}

	var mf modelsFile
	if l.loadSection(dir, inc.Models, "models", &mf) {
		snap.Models = mf.Models
	}

	var ff foldersFile
	if l.loadSection(dir, inc.Folders, "folders", &ff) && ff.Folders != nil {
		snap.Folders = ff.Folders
	}

	var rf rulesFile
	if l.loadSection(dir, inc.Rules, "rules", &rf) {
		snap.Rules = rf.Rules
	}

	var cf colorPacksFile
	if l.loadSection(dir, inc.ColorPacks, "color_packs", &cf) && cf.ColorPacks != nil {
		snap.ColorPacks = cf.ColorPacks
	}

	var sf structureFile
	if l.loadSection(dir, inc.Structure, "structure", &sf) && sf.Structure != nil {
		snap.Structure = sf.Structure
	}

	if l.sectionErr != nil {
		return nil, l.sectionErr
	}

	normalizeCodeRanges(snap.Rules)

	return snap, nil
}

// loadSection reads one include file into out. A missing file is not an
// error: the section stays empty and the return value is false. Parse
// failures are recorded and surfaced by Load.
func (l *Loader) loadSection(dir, name, section string, out any) bool {
	path := filepath.Join(dir, name)
	err := readYAML(path, out)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("catalog section file not found, section left empty",
				"section", section, "path", path)
			return false
		}
		l.sectionErr = err
		return false
	}
	l.loadedSections[section] = true
	return true
}

// LoadedSections returns which sections were read from files during the
// last Load call.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]bool, len(l.loadedSections))
	maps.Copy(out, l.loadedSections)
	return out
}

// readYAML reads and unmarshals one YAML file. Unmarshal failures wrap
// ErrInvalidYAML.
func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}
	return nil
}

// normalizeCodeRanges fills compiled defaults into code ranges that omit
// min, max, or pad.
func normalizeCodeRanges(rules []catalog.Rule) {
	for i := range rules {
		normalizeClause(&rules[i].Match.Clause)
		for j := range rules[i].Match.AnyOf {
			normalizeClause(&rules[i].Match.AnyOf[j])
		}
	}
}

func normalizeClause(c *catalog.Clause) {
	if c.CodeRange == nil {
		return
	}
	if c.CodeRange.Min == 0 {
		c.CodeRange.Min = DefaultCodeRangeMin
	}
	if c.CodeRange.Max == 0 {
		c.CodeRange.Max = DefaultCodeRangeMax
	}
	if c.CodeRange.Pad == 0 {
		c.CodeRange.Pad = DefaultCodeRangePad
	}
}
