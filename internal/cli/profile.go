package cli

import (
	"daylist/internal/auth"

	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the logged-in user's profile",
	}
	cmd.AddCommand(newProfileShowCmd(app))
	cmd.AddCommand(newProfileUpdateCmd(app))
	cmd.AddCommand(newProfileSetImageCmd(app))
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			sessions := auth.NewSessions(kv, auth.NewDirectory(kv))
			sess, ok := sessions.Current()
			if !ok {
				return writeErr(cmd, auth.ErrNotLoggedIn)
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

func newProfileUpdateCmd(app *App) *cobra.Command {
	var username, email string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update username and/or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			sessions := auth.NewSessions(kv, auth.NewDirectory(kv))
			sess, err := sessions.UpdateProfile(auth.ProfilePatch{Username: username, Email: email})
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

	cmd.Flags().StringVar(&username, "username", "", "New username (empty: keep)")
	cmd.Flags().StringVar(&email, "email", "", "New email (empty: keep)")
	return cmd
}

func newProfileSetImageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-image <path>",
		Short: "Set the profile picture from an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := openStore(app, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()

			dataURI, err := auth.ReadImageDataURI(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			sessions := auth.NewSessions(kv, auth.NewDirectory(kv))
			sess, err := sessions.UpdateImage(dataURI)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"username": sess.Username,
					"imageLen": len(sess.Image),
				},
			})
		},
	}
}
