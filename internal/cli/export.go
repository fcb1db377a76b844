package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newExportCmd(a *app) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the active document",
		Long: `Export writes the whole active document as JSON or YAML, to stdout or to
the file named by --output.

Example:
  nest export --code mycode --format yaml --output backup.yaml`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatYAML {
				return userErrorf("unknown format %q (valid: json, yaml)", format)
			}
			if _, err := a.activate(); err != nil {
				return err
			}
			doc := a.session.Document()

			if output == "" {
				return encodeDocument(cmd.OutOrStdout(), format, doc)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := encodeDocument(f, format, doc); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func encodeDocument(w io.Writer, format string, doc *types.Document) error {
	if format == formatJSON {
		return printJSON(w, doc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
