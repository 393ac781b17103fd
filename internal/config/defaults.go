package config

// Default value constants to avoid magic numbers and strings.
const (
	// Section file names resolved relative to the catalog directory when
	// the root file's includes omit them.
	DefaultPacksFile      = "packs.yaml"
	DefaultModelsFile     = "models.yaml"
	DefaultFoldersFile    = "folders.yaml"
	DefaultRulesFile      = "rules.yaml"
	DefaultColorPacksFile = "colorpacks.yaml"
	DefaultStructureFile  = "structure.yaml"

	// RootFileName is the catalog entry point inside the config directory.
	RootFileName = "packpath.yaml"

	// EnvConfigDir overrides the catalog directory location.
	EnvConfigDir = "PACKPATH_CONFIG_DIR"

	// Code range defaults applied to rules that omit the fields.
	DefaultCodeRangeMin = 1
	DefaultCodeRangeMax = 99
	DefaultCodeRangePad = 2
)

// defaultIncludes returns the include map with compiled default file names.
func defaultIncludes() includes {
	return includes{
		Packs:      DefaultPacksFile,
		Models:     DefaultModelsFile,
		Folders:    DefaultFoldersFile,
		Rules:      DefaultRulesFile,
		ColorPacks: DefaultColorPacksFile,
		Structure:  DefaultStructureFile,
	}
}
