package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/schedulenest/internal/keymap"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// maxCodeAttempts bounds the re-rolls when generating an unused user code.
const maxCodeAttempts = 10

type codeResult struct {
	Code   string `json:"code"`
	Exists bool   `json:"exists"`
}

func newCodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Create and check access codes",
	}
	cmd.AddCommand(newCodeNewCmd(a), newCodeCheckCmd(a))
	return cmd
}

func newCodeNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new [user-code]",
		Short: "Register an access code with an empty document",
		Long: `New registers the given access code, or generates an unused one, and
creates its initial document with the default folders and categories.

Example:
  nest code new mycode
  nest code new --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			var code string
			if len(args) == 1 {
				code = args[0]
				if err := keymap.ValidateUserCode(code); err != nil {
					return err
				}
			} else {
				var err error
				if code, err = a.unusedCode(); err != nil {
					return err
				}
			}

			if _, err := a.docs.Register(code); err != nil {
				return fmt.Errorf("register %s: %w", code, err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), codeResult{Code: code, Exists: true})
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		}),
	}
}

// unusedCode generates user codes until one has no document.
func (a *app) unusedCode() (string, error) {
	keys := a.docs.Keys()
	for i := 0; i < maxCodeAttempts; i++ {
		code := keys.GenerateCode()
		if !a.docs.ExistsForUserCode(code) {
			return code, nil
		}
	}
	return "", fmt.Errorf("no unused code after %d attempts: %w", maxCodeAttempts, types.ErrCodeTaken)
}

func newCodeCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <user-code>",
		Short: "Report whether an access code is registered",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if err := keymap.ValidateUserCode(code); err != nil {
				return err
			}
			exists := a.docs.ExistsForUserCode(code)
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), codeResult{Code: code, Exists: exists})
			}
			if exists {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: registered\n", code)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: available\n", code)
			}
			return nil
		}),
	}
}
