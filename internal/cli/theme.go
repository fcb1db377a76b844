package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type themeResult struct {
	DarkMode bool `json:"darkMode"`
}

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the dark-mode preference",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the dark-mode preference",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.printTheme(cmd, a.session.IsDarkMode())
		}),
	}, &cobra.Command{
		Use:   "toggle",
		Short: "Flip the dark-mode preference",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			dark, err := a.session.ToggleDarkMode()
			if err != nil {
				return err
			}
			return a.printTheme(cmd, dark)
		}),
	})
	return cmd
}

func (a *app) printTheme(cmd *cobra.Command, dark bool) error {
	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), themeResult{DarkMode: dark})
	}
	mode := "light"
	if dark {
		mode = "dark"
	}
	fmt.Fprintln(cmd.OutOrStdout(), mode)
	return nil
}
