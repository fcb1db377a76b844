package planner

import (
	"slices"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// AddSchedule appends sc to the document's schedules. The category falls back
// to the first vocabulary entry when it is not a member, and a zero CreatedAt
// is stamped with the current time.
func (s *Service) AddSchedule(code string, sc types.Schedule) (types.Outcome, error) {
	if err := sc.Validate(); err != nil {
		return types.NotFound, err
	}
	return s.mutate(code, "add_schedule", func(doc *types.Document) (types.Outcome, error) {
		if doc.ScheduleIndex(sc.ID) != -1 {
			return types.NotFound, types.ErrDuplicateID
		}
		sc.Category = doc.ResolveCategory(sc.Category)
		if sc.CreatedAt.IsZero() {
			sc.CreatedAt = s.timestamp()
		}
		doc.Schedules = append(doc.Schedules, sc)
		return types.Applied, nil
	})
}

// UpdateSchedule merges patch into the schedule with the given ID. Schedules
// carry no update timestamp.
func (s *Service) UpdateSchedule(code, id string, patch types.SchedulePatch) (types.Outcome, error) {
	if err := patch.Validate(); err != nil {
		return types.NotFound, err
	}
	return s.mutate(code, "update_schedule", func(doc *types.Document) (types.Outcome, error) {
		i := doc.ScheduleIndex(id)
		if i == -1 {
			return types.NotFound, nil
		}
		if patch.Category != nil {
			patch.Category = types.Ptr(doc.ResolveCategory(*patch.Category))
		}
		patch.Apply(&doc.Schedules[i])
		return types.Applied, nil
	})
}

// DeleteSchedule removes the schedule with the given ID. Deleting an absent ID
// is a no-op that reports NotFound.
func (s *Service) DeleteSchedule(code, id string) (types.Outcome, error) {
	return s.mutate(code, "delete_schedule", func(doc *types.Document) (types.Outcome, error) {
		before := len(doc.Schedules)
		doc.Schedules = slices.DeleteFunc(doc.Schedules, func(sc types.Schedule) bool { return sc.ID == id })
		return removed(before, len(doc.Schedules)), nil
	})
}

// SchedulesOn returns the schedules dated day, in document order.
func (s *Service) SchedulesOn(code, day string) ([]types.Schedule, bool) {
	doc, ok := s.docs.Load(code)
	if !ok {
		return nil, false
	}
	out := []types.Schedule{}
	for _, sc := range doc.Schedules {
		if sc.Date == day {
			out = append(out, sc)
		}
	}
	return out, true
}

func removed(before, after int) types.Outcome {
	if after < before {
		return types.Applied
	}
	return types.NotFound
}
