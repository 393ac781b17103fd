// Package cli implements the packpath command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/packpath/packpath/internal/config"
	"github.com/packpath/packpath/internal/resolver"
	"github.com/packpath/packpath/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "packpath",
	Short: "Resolve marketing asset filenames to their pack folder paths",
	Long: `packpath maps marketing asset filenames onto the season's pack
directory hierarchy: it detects the pack and model from the filename,
evaluates the placement rules in order, and expands the winning rule's
path template into the destination folder path.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Resolution failures are rendered by the
// commands themselves; everything else is reported here once.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, resolver.ErrResolution) {
		fmt.Fprintln(os.Stderr, "packpath:", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("packpath %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().StringP("config", "c", "config", "Catalog configuration directory")
}

// loadManager creates a config manager and loads the catalog from the
// --config directory (or the environment override).
func loadManager(cmd *cobra.Command) (*config.Manager, error) {
	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	m := config.NewManager()
	if _, err := m.Load(dir); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return m, nil
}
