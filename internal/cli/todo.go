package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/schedulenest/internal/planner"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

func newTodoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos",
	}
	cmd.AddCommand(
		newTodoAddCmd(a),
		newTodoUpdateCmd(a),
		newTodoToggleCmd(a),
		newTodoDeleteCmd(a),
		newTodoListCmd(a),
	)
	return cmd
}

func addTodoFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "title")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().String("category", "", "category")
	cmd.Flags().String("emoji", "", "emoji")
	cmd.Flags().String("bg", "", "background color")
	cmd.Flags().String("fg", "", "text color")
}

func todoPatchFromFlags(cmd *cobra.Command) types.TodoPatch {
	return types.TodoPatch{
		Title:           stringFlag(cmd, "title"),
		Description:     stringFlag(cmd, "description"),
		DueDate:         stringFlag(cmd, "due"),
		Category:        stringFlag(cmd, "category"),
		Completed:       boolFlag(cmd, "completed"),
		Emoji:           stringFlag(cmd, "emoji"),
		BackgroundColor: stringFlag(cmd, "bg"),
		TextColor:       stringFlag(cmd, "fg"),
	}
}

func newTodoAddCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a todo",
		Long: `Add creates an open todo.

Example:
  nest todo add --code mycode --title "Buy milk" --due 2024-05-03`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			if id == "" {
				id = planner.NewID(planner.KindTodo)
			}
			var t types.Todo
			todoPatchFromFlags(cmd).Apply(&t)
			t.ID = id

			outcome, err := a.planner.AddTodo(code, t)
			return a.finish(cmd, "todo", id, outcome, err)
		}),
	}
	cmd.Flags().StringVar(&id, "id", "", "entity ID (default: generated)")
	addTodoFieldFlags(cmd)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTodoUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a todo",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.UpdateTodo(code, args[0], todoPatchFromFlags(cmd))
			return a.finish(cmd, "todo", args[0], outcome, err)
		}),
	}
	addTodoFieldFlags(cmd)
	cmd.Flags().Bool("completed", false, "completion state")
	return cmd
}

func newTodoToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the completed state of a todo",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.ToggleTodo(code, args[0])
			return a.finish(cmd, "todo", args[0], outcome, err)
		}),
	}
}

func newTodoDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a todo",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.DeleteTodo(code, args[0])
			return a.finishDelete(cmd, "todo", args[0], outcome, err)
		}),
	}
}

func newTodoListCmd(a *app) *cobra.Command {
	var pending bool
	var due, category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			source := a.session.Document().Todos
			if due != "" {
				if !types.ValidDate(due) {
					return fmt.Errorf("%w: %q", types.ErrInvalidDate, due)
				}
				source, _ = a.planner.TodosDue(code, due)
			}

			todos := []types.Todo{}
			for _, t := range source {
				if pending && t.Completed {
					continue
				}
				if category != "" && t.Category != category {
					continue
				}
				todos = append(todos, t)
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), todos)
			}
			for _, t := range todos {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\tdue %s\t[%s]\t%s\n",
					mark, t.ID, optional(t.DueDate), t.Category, t.Title)
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&pending, "pending", false, "hide completed todos")
	cmd.Flags().StringVar(&due, "due", "", "only todos due on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "only todos in this category")
	return cmd
}
