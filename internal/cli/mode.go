package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"packlist/internal/preset"
)

func newModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mode [key]",
		Short: "Show or switch the trip mode (switching resets checklist progress)",
		Long: strings.TrimSpace(`
Show the current trip mode and the known mode keys, or switch to a new mode.

Switching mode replaces the whole checklist with the preset for the new mode.
It is a hard reset of packing progress, not a merge.
`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				cur := sess.actions.Store().Get().Settings.TripMode
				if app.jsonOut() {
					return app.write(cmd, map[string]any{"tripMode": cur, "known": preset.Keys()})
				}
				for _, k := range preset.Keys() {
					marker := " "
					if k == cur {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %-10s %s\n", marker, k, preset.Lookup(k).Label)
				}
				return nil
			}

			key := preset.Normalize(args[0])
			if !preset.Known(strings.ToLower(strings.TrimSpace(args[0]))) {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown mode %q, using %q\n", args[0], key)
			}
			sess.actions.ChangeMode(key)
			if app.jsonOut() {
				return app.write(cmd, sess.actions.Store().Get().Data)
			}
			fmt.Fprintf(out, "mode: %s\n", key)
			return nil
		},
	}
}
