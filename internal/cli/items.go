package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"packlist/internal/action"
)

func newListCmd(app *App) *cobra.Command {
	var catFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the checklist grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			st := sess.actions.Store().Get()
			if app.jsonOut() {
				return app.write(cmd, st.Data)
			}

			out := cmd.OutOrStdout()
			p := st.Data.Progress()
			fmt.Fprintf(out, "mode: %s   %d/%d packed (%d%%)\n", st.Data.Mode, p.Done, p.Total, p.Pct)
			for _, c := range st.Data.Cats {
				if catFilter != "" && c.ID != catFilter {
					continue
				}
				fmt.Fprintf(out, "\n%s %s\n", emojiOr(c.Emoji, "•"), c.Name)
				for _, it := range st.Data.Items {
					if it.Cat != c.ID {
						continue
					}
					mark := "[ ]"
					if it.Done {
						mark = "[x]"
					}
					fmt.Fprintf(out, "  %s %-*s %s\n", mark, 30, it.Name, it.ID)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catFilter, "cat", "", "only show one category id")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var cat, emoji string

	cmd := &cobra.Command{
		Use:   "add <name>...",
		Short: "Add a new item to the checklist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			res := sess.actions.CreateItem(action.CreateItemInput{
				Name:  strings.Join(args, " "),
				Emoji: emoji,
				Cat:   cat,
			})
			if app.jsonOut() {
				return app.write(cmd, res)
			}
			if !res.OK {
				return fmt.Errorf("item not created (%s)", strings.ToLower(res.Reason))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", res.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&cat, "cat", "", "category id (default: misc)")
	cmd.Flags().StringVar(&emoji, "emoji", "", "item emoji")
	return cmd
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>...",
		Short: "Flip the done flag for one or more items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			for _, id := range args {
				sess.actions.ToggleDone(strings.TrimSpace(id))
			}
			return progressOut(app, cmd, sess)
		},
	}
}

func newAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "all <done|todo>",
		Short:     "Mark every item done (or not done)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"done", "todo"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var done bool
			switch strings.ToLower(strings.TrimSpace(args[0])) {
			case "done":
				done = true
			case "todo":
				done = false
			default:
				return fmt.Errorf("expected done|todo, got %q", args[0])
			}

			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			sess.actions.SetAll(done)
			return progressOut(app, cmd, sess)
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Uncheck every item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			sess.actions.ResetChecks()
			return progressOut(app, cmd, sess)
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()

			for _, id := range args {
				sess.actions.DeleteItem(strings.TrimSpace(id))
			}
			return progressOut(app, cmd, sess)
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Report done/total/pct for the current checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			defer sess.close()
			return progressOut(app, cmd, sess)
		},
	}
}

func progressOut(app *App, cmd *cobra.Command, sess *session) error {
	p := sess.actions.Progress()
	if app.jsonOut() {
		return app.write(cmd, p)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d/%d packed (%d%%)\n", p.Done, p.Total, p.Pct)
	return err
}

func emojiOr(emoji, fallback string) string {
	if emoji != "" {
		return emoji
	}
	return fallback
}
