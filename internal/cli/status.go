package cli

import (
	"daylist/internal/auth"
	"daylist/internal/task"
	"daylist/internal/tui"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show local store status",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			dir := auth.NewDirectory(kv)
			sessions := auth.NewSessions(kv, dir)
			l := task.Load(kv)

			current := ""
			if sess, ok := sessions.Current(); ok {
				current = sess.Username
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"accounts":    len(dir.Accounts()),
					"currentUser": current,
					"tasks":       len(l.Tasks()),
					"pending":     len(l.Pending()),
					"completed":   len(l.Completed()),
					"theme":       string(tui.LoadTheme(kv)),
				},
			})
		},
	}
}
