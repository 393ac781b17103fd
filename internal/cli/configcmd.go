package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packpath/packpath/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the catalog configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the catalog and report every validation problem",
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	m := config.NewManager()
	snap, err := m.Load(dir)
	if err != nil {
		var ve *config.ValidationErrors
		if errors.As(err, &ve) {
			_, _ = fmt.Fprintf(out, "%s catalog in %s is invalid:\n", symError(), m.Dir())
			for _, e := range ve.Errors {
				_, _ = fmt.Fprintf(out, "  %s %s: %s", symError(), e.Field, e.Message)
				if e.Value != nil {
					_, _ = fmt.Fprintf(out, " (%s)", cliMuted.Render(fmt.Sprint(e.Value)))
				}
				_, _ = fmt.Fprintln(out)
			}
			return err
		}
		return err
	}

	_, _ = fmt.Fprintf(out, "%s catalog %s is valid: %d packs, %d models, %d rules\n",
		symSuccess(), snap.Version, len(snap.Packs), len(snap.Models), len(snap.Rules))
	return nil
}
