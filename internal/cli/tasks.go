package cli

import (
	"errors"
	"strconv"

	"daylist/internal/model"
	"daylist/internal/task"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the to-do list",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksToggleCmd(app))
	cmd.AddCommand(newTasksEditCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	return cmd
}

func taskRow(t model.Task) map[string]any {
	return map[string]any{
		"id":        t.ID,
		"text":      t.Text,
		"completed": t.Completed,
		"date":      task.DisplayDue(t.Due),
	}
}

func taskRows(ts []model.Task) []map[string]any {
	rows := make([]map[string]any, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, taskRow(t))
	}
	return rows
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.New("task id must be an integer")
	}
	return id, nil
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks split into pending and completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			l := task.Load(kv)
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"pending":   taskRows(l.Pending()),
					"completed": taskRows(l.Completed()),
				},
			})
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a pending task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			normalized, err := task.ParseDue(due)
			if err != nil {
				return writeErr(cmd, err)
			}
			l := task.Load(kv)
			t, added, err := l.Add(args[0], normalized)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !added {
				return writeErr(cmd, errors.New("task text is empty"))
			}
			return writeOut(cmd, app, map[string]any{"data": taskRow(t)})
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (Y-m-d or \"Y-m-d H:i\"; default: today)")
	return cmd
}

func newTasksToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Toggle a task between pending and completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			l := task.Load(kv)
			toggled, err := l.Toggle(id)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !toggled {
				return writeErr(cmd, errNoSuchTask(id))
			}
			t, _ := l.Find(id)
			return writeOut(cmd, app, map[string]any{"data": taskRow(t)})
		},
	}
}

func newTasksEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a task's text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			l := task.Load(kv)
			edited, err := l.Edit(id, args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			if !edited {
				if _, ok := l.Find(id); !ok {
					return writeErr(cmd, errNoSuchTask(id))
				}
				return writeErr(cmd, errors.New("replacement text is empty"))
			}
			t, _ := l.Find(id)
			return writeOut(cmd, app, map[string]any{"data": taskRow(t)})
		},
	}
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task (requires --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			// Deleting is the one destructive operation; keep the TUI's
			// confirmation step in script form.
			if !yes {
				return writeErr(cmd, errors.New("refusing to delete without --yes"))
			}
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			l := task.Load(kv)
			deleted, err := l.Delete(id)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !deleted {
				return writeErr(cmd, errNoSuchTask(id))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}

type noSuchTaskError struct{ id int64 }

func (e noSuchTaskError) Error() string {
	return "task not found: " + strconv.FormatInt(e.id, 10)
}

func errNoSuchTask(id int64) error { return noSuchTaskError{id: id} }
