package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packpath/packpath/internal/structure"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the full declared pack directory hierarchy",
	Long: `Tree prints every directory the catalog declares: each pack with its
key visual, tech shot, and supporting model folders, plus color pack
options. With --create the hierarchy is materialized on disk.`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().String("create", "", "Create the hierarchy under this base directory")
}

func runTree(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	createBase, _ := cmd.Flags().GetString("create")

	m, err := loadManager(cmd)
	if err != nil {
		return err
	}
	snap, err := m.Snapshot()
	if err != nil {
		return err
	}

	root := structure.Generate(snap)
	_, _ = fmt.Fprintln(out, structure.Render(root))

	if createBase == "" {
		return nil
	}

	created, err := structure.Materialize(root, createBase)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	_, _ = fmt.Fprintf(out, "\n%s %d directories created under %s\n", symSuccess(), created, createBase)
	return nil
}
