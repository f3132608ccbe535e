package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWipeCmd(app *App) *cobra.Command {
	var noBackup bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Reset settings and checklist to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			if !noBackup {
				// Best-effort: a failed backup never blocks the wipe.
				if path, err := sess.st.Backup(); err == nil && path != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "backup: %s\n", path)
				}
			}
			sess.actions.WipeAll()
			return progressOut(app, cmd, sess)
		},
	}
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip the database file backup")
	return cmd
}
