package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/schedulenest/internal/planner"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

type folderSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
	Notes     int    `json:"notes"`
}

func newFolderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage note folders",
	}
	cmd.AddCommand(
		newFolderAddCmd(a),
		newFolderRenameCmd(a),
		newFolderDeleteCmd(a),
		newFolderListCmd(a),
	)
	return cmd
}

func newFolderAddCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an empty folder",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			if id == "" {
				id = planner.NewID(planner.KindFolder)
			}
			outcome, err := a.planner.AddFolder(code, types.Folder{ID: id, Name: args[0]})
			return a.finish(cmd, "folder", id, outcome, err)
		}),
	}
	cmd.Flags().StringVar(&id, "id", "", "folder ID (default: generated)")
	return cmd
}

func newFolderRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.UpdateFolder(code, args[0], types.FolderPatch{Name: &args[1]})
			return a.finish(cmd, "folder", args[0], outcome, err)
		}),
	}
}

func newFolderDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a folder and every note in it",
		Long: `Delete removes the folder together with its notes. Default folders are
refused while protect_default_folders is enabled in config.yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.DeleteFolder(code, args[0])
			return a.finishDelete(cmd, "folder", args[0], outcome, err)
		}),
	}
}

func newFolderListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List folders",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if _, err := a.activate(); err != nil {
				return err
			}
			folders := []folderSummary{}
			for _, f := range a.session.Document().Folders {
				folders = append(folders, folderSummary{ID: f.ID, Name: f.Name, IsDefault: f.IsDefault, Notes: len(f.Notes)})
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), folders)
			}
			for _, f := range folders {
				def := ""
				if f.IsDefault {
					def = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%s\t%d notes\n", f.ID, f.Name, def, f.Notes)
			}
			return nil
		}),
	}
}
