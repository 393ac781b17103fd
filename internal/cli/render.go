package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/packpath/packpath/internal/resolver"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }

// card wraps content in a rounded box with a styled title line.
func card(title, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
	return boxStyle.Render(cliPrimary.Render(title) + "\n\n" + content)
}

// renderResult formats a resolution result as a card with the match
// details and the destination tree.
func renderResult(res *resolver.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", symSuccess(), res.Filename)
	fmt.Fprintf(&b, "Pack   %s %s\n", res.Pack.Folder, cliMuted.Render("("+res.Pack.ID+")"))
	if res.Model != nil {
		fmt.Fprintf(&b, "Model  %s %s\n", res.Model.Folder, cliMuted.Render("("+res.Model.Code+")"))
	} else {
		fmt.Fprintf(&b, "Model  %s\n", cliMuted.Render("none detected"))
	}
	fmt.Fprintf(&b, "Rule   %s %s\n\n", res.Rule.ID, cliMuted.Render(res.Rule.Description))
	b.WriteString(res.Path.Tree)

	return card("Resolved", b.String())
}

// renderFailure formats a resolution failure with its classified kind.
func renderFailure(filename string, err error) string {
	var re *resolver.Error
	if !errors.As(err, &re) {
		return fmt.Sprintf("%s %s: %v", symError(), filename, err)
	}
	return fmt.Sprintf("%s %s\n  %s %s", symError(), filename, cliMuted.Render(string(re.Kind)), re.Message)
}
