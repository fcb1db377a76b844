package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWipeCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Erase all stored documents, codes and preferences",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if !yes {
				return userErrorf("refusing to wipe storage without --yes")
			}
			if err := a.docs.Wipe(); err != nil {
				return err
			}
			a.session.ClearActive()
			fmt.Fprintln(cmd.OutOrStdout(), "storage wiped")
			return nil
		}),
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return cmd
}
