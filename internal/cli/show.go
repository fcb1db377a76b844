package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print a summary of the active document",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if _, err := a.activate(); err != nil {
				return err
			}
			doc := a.session.Document()
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), doc)
			}

			notes := 0
			for _, f := range doc.Folders {
				notes += len(f.Notes)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "code:      ", a.session.ActiveCode())
			fmt.Fprintln(out, "schedules: ", len(doc.Schedules))
			fmt.Fprintln(out, "todos:     ", len(doc.Todos))
			fmt.Fprintln(out, "folders:   ", len(doc.Folders))
			fmt.Fprintln(out, "notes:     ", notes)
			fmt.Fprintln(out, "categories:", doc.Categories)
			return nil
		}),
	}
}
