package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/packpath/packpath/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the resolution HTTP API",
	Long: `Serve exposes the resolver over HTTP: POST /api/resolve places a
filename, GET /api/structure and /api/paths describe the declared
hierarchy, and POST /api/reload picks up catalog edits without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "localhost:8420", "Listen address")
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	// Colorized logs on a terminal, plain text otherwise.
	isTTY := isatty.IsTerminal(os.Stderr.Fd())
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
		NoColor:    !isTTY,
	}))
	slog.SetDefault(logger)

	m, err := loadManager(cmd)
	if err != nil {
		return err
	}
	snap, _ := m.Snapshot()
	slog.Info("catalog loaded",
		"dir", m.Dir(),
		"version", snap.Version,
		"packs", len(snap.Packs),
		"rules", len(snap.Rules),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(m).ListenAndServe(ctx, addr)
}
