package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the category vocabulary",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.AddCategory(code, args[0])
			return a.finish(cmd, "category", args[0], outcome, err)
		}),
	}, &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a category; entities keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.RemoveCategory(code, args[0])
			return a.finishDelete(cmd, "category", args[0], outcome, err)
		}),
	}, &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if _, err := a.activate(); err != nil {
				return err
			}
			categories := a.session.Document().Categories
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), categories)
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		}),
	})
	return cmd
}
