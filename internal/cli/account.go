package cli

import (
	"daylist/internal/auth"

	"github.com/spf13/cobra"
)

func newRegisterCmd(app *App) *cobra.Command {
	var username, email, password, confirm string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			if confirm == "" {
				confirm = password
			}
			acc, err := auth.Register(auth.NewDirectory(kv), username, email, password, confirm)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"username": acc.Username,
					"email":    acc.Email,
				},
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (unique)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation (default: same as --password)")
	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			sessions := auth.NewSessions(kv, auth.NewDirectory(kv))
			sess, err := sessions.Login(username, password)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"username": sess.Username,
					"email":    sess.Email,
				},
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			sessions := auth.NewSessions(kv, auth.NewDirectory(kv))
			if err := sessions.Logout(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"loggedOut": true}})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			sessions := auth.NewSessions(kv, auth.NewDirectory(kv))
			sess, ok := sessions.Current()
			if !ok {
				return writeOut(cmd, app, map[string]any{"data": nil})
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"username": sess.Username,
					"email":    sess.Email,
					"hasImage": sess.Image != "",
				},
			})
		},
	}
}
