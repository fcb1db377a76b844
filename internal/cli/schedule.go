package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/schedulenest/internal/planner"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

func newScheduleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage calendar entries",
	}
	cmd.AddCommand(
		newScheduleAddCmd(a),
		newScheduleUpdateCmd(a),
		newScheduleDeleteCmd(a),
		newScheduleListCmd(a),
	)
	return cmd
}

// addScheduleFieldFlags registers the mutable schedule fields.
func addScheduleFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "title")
	cmd.Flags().String("content", "", "free-form description")
	cmd.Flags().String("date", "", "date (YYYY-MM-DD)")
	cmd.Flags().String("start", "", "start time (HH:MM)")
	cmd.Flags().String("end", "", "end time (HH:MM)")
	cmd.Flags().String("category", "", "category")
	cmd.Flags().String("emoji", "", "emoji")
	cmd.Flags().String("bg", "", "background color")
	cmd.Flags().String("fg", "", "text color")
}

func schedulePatchFromFlags(cmd *cobra.Command) types.SchedulePatch {
	return types.SchedulePatch{
		Title:           stringFlag(cmd, "title"),
		Content:         stringFlag(cmd, "content"),
		Date:            stringFlag(cmd, "date"),
		StartTime:       stringFlag(cmd, "start"),
		EndTime:         stringFlag(cmd, "end"),
		Category:        stringFlag(cmd, "category"),
		Emoji:           stringFlag(cmd, "emoji"),
		BackgroundColor: stringFlag(cmd, "bg"),
		TextColor:       stringFlag(cmd, "fg"),
	}
}

func newScheduleAddCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a calendar entry",
		Long: `Add creates a schedule on the given date. An unknown category falls back
to the first category of the document.

Example:
  nest schedule add --code mycode --title "Dentist" --date 2024-05-01 --start 09:30`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			if id == "" {
				id = planner.NewID(planner.KindSchedule)
			}
			var sc types.Schedule
			schedulePatchFromFlags(cmd).Apply(&sc)
			sc.ID = id

			outcome, err := a.planner.AddSchedule(code, sc)
			return a.finish(cmd, "schedule", id, outcome, err)
		}),
	}
	cmd.Flags().StringVar(&id, "id", "", "entity ID (default: generated)")
	addScheduleFieldFlags(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newScheduleUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a calendar entry",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.UpdateSchedule(code, args[0], schedulePatchFromFlags(cmd))
			return a.finish(cmd, "schedule", args[0], outcome, err)
		}),
	}
	addScheduleFieldFlags(cmd)
	return cmd
}

func newScheduleDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a calendar entry",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			outcome, err := a.planner.DeleteSchedule(code, args[0])
			return a.finishDelete(cmd, "schedule", args[0], outcome, err)
		}),
	}
}

func newScheduleListCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calendar entries",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			code, err := a.activate()
			if err != nil {
				return err
			}
			schedules := a.session.Document().Schedules
			if date != "" {
				if !types.ValidDate(date) {
					return fmt.Errorf("%w: %q", types.ErrInvalidDate, date)
				}
				schedules, _ = a.planner.SchedulesOn(code, date)
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), schedules)
			}
			for _, sc := range schedules {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s-%s\t[%s]\t%s\n",
					sc.ID, sc.Date, optional(sc.StartTime), optional(sc.EndTime), sc.Category, sc.Title)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&date, "date", "", "only entries on this date (YYYY-MM-DD)")
	return cmd
}
