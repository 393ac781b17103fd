package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/packpath/packpath/internal/resolver"
	"github.com/packpath/packpath/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [filename]",
	Short: "Resolve one filename to its destination folder path",
	Long: `Resolve detects the pack and model in the filename, finds the first
placement rule whose conditions hold, and prints the expanded destination
path. Without an argument the filename is prompted for interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Bool("json", false, "Print the result as JSON")
}

func runResolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")

	filename, err := resolveFilenameArg(args)
	if err != nil {
		return err
	}

	m, err := loadManager(cmd)
	if err != nil {
		return err
	}
	snap, err := m.Snapshot()
	if err != nil {
		return err
	}

	result, err := resolver.Resolve(filename, snap)
	if err != nil {
		if asJSON {
			return printResolveErrorJSON(cmd, filename, err)
		}
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderFailure(filename, err))
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	_, _ = fmt.Fprintln(out, renderResult(result))
	return nil
}

// resolveFilenameArg returns the filename argument, prompting for one
// when omitted and a terminal is attached.
func resolveFilenameArg(args []string) (string, error) {
	if len(args) == 1 {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return "", errors.New("filename must not be empty")
		}
		return name, nil
	}

	hm := ui.NewHeadlessManager()
	if hm.IsHeadless() {
		return "", errors.New("filename required in non-interactive mode")
	}

	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Filename to resolve").
			Placeholder("26SS_FTW_Bright_Gold_KV_M2J.jpg").
			Value(&name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("enter a filename")
				}
				return nil
			}),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New("cancelled")
		}
		return "", fmt.Errorf("prompt: %w", err)
	}
	return strings.TrimSpace(name), nil
}

// printResolveErrorJSON emits a machine-readable failure and still
// reports the error to the caller for the exit code.
func printResolveErrorJSON(cmd *cobra.Command, filename string, resErr error) error {
	kind, _ := resolver.KindOf(resErr)
	payload := map[string]any{
		"filename":   filename,
		"error":      resErr.Error(),
		"error_type": string(kind),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}
	return resErr
}
