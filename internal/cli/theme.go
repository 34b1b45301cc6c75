package cli

import (
	"daylist/internal/tui"

	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the light/dark theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"theme": string(tui.LoadTheme(kv))},
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			next, err := tui.ToggleTheme(kv)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"theme": string(next)},
			})
		},
	})

	return cmd
}
