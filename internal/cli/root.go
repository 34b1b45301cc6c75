package cli

import (
	"fmt"
	"os"
	"strings"

	"daylist/internal/format"
	"daylist/internal/store"
	"daylist/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Backend    string
	PrettyJSON bool
	Format     string
	Verbose    bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "daylist",
		Short:        "Local-first to-do list with accounts (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  daylist

  # Scriptable commands
  daylist register --username alice --email a@b.com --password 'Abc123!'
  daylist tasks add "Buy milk" --due "2025-01-01 10:00"
  daylist tasks list
  daylist theme toggle
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("DAYLIST_DIR", ""), "Path to data dir (default: ~/.daylist)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("DAYLIST_BACKEND", ""), "Store backend (files|sqlite)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DAYLIST_FORMAT", "json"), "Output format (json)")
	cmd.PersistentFlags().BoolVar(&app.Verbose, "verbose", false, "Log diagnostics to stderr")

	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newProfileCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	// The TUI owns the terminal; keep the store quiet unless asked.
	kv, err := openStore(app, !app.Verbose)
	if err != nil {
		return err
	}
	defer kv.Close()
	return tui.Run(kv)
}

func (app *App) logger(quiet bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "daylist"})
	switch {
	case quiet:
		logger.SetLevel(log.FatalLevel)
	case app.Verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

func openStore(app *App, quiet bool) (store.KV, error) {
	return store.Open(store.Options{
		Dir:     app.Dir,
		Backend: app.Backend,
		Logger:  app.logger(quiet),
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
