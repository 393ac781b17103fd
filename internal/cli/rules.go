package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/packpath/packpath/internal/ui"
	"github.com/packpath/packpath/pkg/catalog"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the placement rules in evaluation order",
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().Bool("plain", false, "Print raw markdown without terminal styling")
}

func runRules(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	plain, _ := cmd.Flags().GetBool("plain")

	m, err := loadManager(cmd)
	if err != nil {
		return err
	}
	snap, err := m.Snapshot()
	if err != nil {
		return err
	}

	md := rulesMarkdown(snap)

	if plain || ui.NewHeadlessManager().IsHeadless() {
		_, _ = fmt.Fprint(out, md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		_, _ = fmt.Fprint(out, md)
		return nil
	}
	styled, err := renderer.Render(md)
	if err != nil {
		_, _ = fmt.Fprint(out, md)
		return nil
	}
	_, _ = fmt.Fprint(out, styled)
	return nil
}

// rulesMarkdown formats the rule table as a markdown document.
func rulesMarkdown(snap *catalog.Snapshot) string {
	var b strings.Builder

	b.WriteString("# Placement Rules\n\n")
	b.WriteString("Rules are evaluated top to bottom; the first rule whose conditions hold wins.\n\n")

	for i, rule := range snap.Rules {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, rule.ID)
		if rule.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", rule.Description)
		}
		fmt.Fprintf(&b, "- **When:** %s\n", rule.Match.Summary())
		fmt.Fprintf(&b, "- **Path:** `%s`\n\n", strings.Join(rule.PathTemplate, "/"))
	}

	return b.String()
}
