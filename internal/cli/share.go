package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"packlist/internal/format"
)

func newShareCmd(app *App) *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print (or copy) a shareable text summary of the checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			if toClipboard {
				res := sess.actions.ShareList()
				if app.jsonOut() {
					return app.write(cmd, res)
				}
				if !res.OK {
					return errors.New("could not copy the summary to the clipboard")
				}
				return nil
			}

			d := sess.actions.Store().Get().Data
			_, err = fmt.Fprint(cmd.OutOrStdout(), format.Summary(d))
			return err
		},
	}
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "copy the summary to the clipboard instead of printing it")
	return cmd
}
