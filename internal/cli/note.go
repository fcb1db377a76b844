package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/schedulenest/internal/planner"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

func newNoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}
	cmd.AddCommand(
		newNoteAddCmd(a),
		newNoteUpdateCmd(a),
		newNoteDeleteCmd(a),
		newNoteListCmd(a),
	)
	return cmd
}

func addNoteFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "title")
	cmd.Flags().String("content", "", "note body")
	cmd.Flags().String("category", "", "category")
}

func notePatchFromFlags(cmd *cobra.Command) types.NotePatch {
	return types.NotePatch{
		Title:    stringFlag(cmd, "title"),
		Content:  stringFlag(cmd, "content"),
		Category: stringFlag(cmd, "category"),
	}
}

func newNoteAddCmd(a *app) *cobra.Command {
	var id, folder string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note to a folder",
		Long: `Add creates a note in the given folder. Default folders are named
folder_<category>.

Example:
  nest note add --code mycode --folder folder_개인 --title "Ideas"`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			if id == "" {
				id = planner.NewID(planner.KindNote)
			}
			var n types.Note
			notePatchFromFlags(cmd).Apply(&n)
			n.ID = id
			n.FolderID = folder

			outcome, err := a.planner.AddNote(code, n)
			if err == nil && outcome == types.NotFound {
				return userErrorf("folder %q not found", folder)
			}
			return a.finish(cmd, "note", id, outcome, err)
		}),
	}
	cmd.Flags().StringVar(&id, "id", "", "entity ID (default: generated)")
	cmd.Flags().StringVar(&folder, "folder", "", "owning folder ID")
	addNoteFieldFlags(cmd)
	_ = cmd.MarkFlagRequired("folder")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newNoteUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a note",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.UpdateNote(code, args[0], notePatchFromFlags(cmd))
			return a.finish(cmd, "note", args[0], outcome, err)
		}),
	}
	addNoteFieldFlags(cmd)
	return cmd
}

func newNoteDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.DeleteNote(code, args[0])
			return a.finishDelete(cmd, "note", args[0], outcome, err)
		}),
	}
}

func newNoteListCmd(a *app) *cobra.Command {
	var folder string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if _, err := a.activate(); err != nil {
				return err
			}
			notes := []types.Note{}
			for _, f := range a.session.Document().Folders {
				if folder != "" && f.ID != folder {
					continue
				}
				notes = append(notes, f.Notes...)
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), notes)
			}
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t[%s]\t%s\n", n.ID, n.FolderID, n.Category, n.Title)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&folder, "folder", "", "only notes in this folder")
	return cmd
}
