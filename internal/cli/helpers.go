package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/schedulenest/internal/keymap"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// mutationResult is the JSON shape printed after a mutation.
type mutationResult struct {
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
}

// activate validates --code and loads its document into the session. It
// returns the system code of the active document.
func (a *app) activate() (string, error) {
	code := a.flags.code
	if code == "" {
		return "", userErrorf("no access code: pass --code")
	}
	if err := keymap.ValidateUserCode(code); err != nil {
		return "", userError(err)
	}
	if !a.session.LoadActive(code) {
		return "", userErrorf("access code %q not found", code)
	}
	return a.session.SystemCode(), nil
}

// finish reports the outcome of a mutation on entity id and refreshes the
// session. NotFound is a user error.
func (a *app) finish(cmd *cobra.Command, kind, id string, outcome types.Outcome, err error) error {
	if err != nil {
		return err
	}
	if outcome == types.NotFound {
		return userErrorf("%s %q not found", kind, id)
	}
	return a.report(cmd, kind, id, outcome)
}

// finishDelete is finish for deletes, which are idempotent: removing an
// entity that is already gone reports not_found and succeeds.
func (a *app) finishDelete(cmd *cobra.Command, kind, id string, outcome types.Outcome, err error) error {
	if err != nil {
		return err
	}
	return a.report(cmd, kind, id, outcome)
}

func (a *app) report(cmd *cobra.Command, kind, id string, outcome types.Outcome) error {
	a.session.RefreshActive()

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), mutationResult{ID: id, Outcome: outcome.String()})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", kind, id, outcome)
	return nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// stringFlag returns a pointer to the flag value when the flag was set on the
// command line, or nil.
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

// optional renders an empty optional field as "-".
func optional(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
