package planner

import (
	"slices"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// AddTodo appends t to the document's todos, resolving its category and
// stamping a zero CreatedAt.
func (s *Service) AddTodo(code string, t types.Todo) (types.Outcome, error) {
	if err := t.Validate(); err != nil {
		return types.NotFound, err
	}
	return s.mutate(code, "add_todo", func(doc *types.Document) (types.Outcome, error) {
		if doc.TodoIndex(t.ID) != -1 {
			return types.NotFound, types.ErrDuplicateID
		}
		t.Category = doc.ResolveCategory(t.Category)
		if t.CreatedAt.IsZero() {
			t.CreatedAt = s.timestamp()
		}
		doc.Todos = append(doc.Todos, t)
		return types.Applied, nil
	})
}

// UpdateTodo merges patch into the todo with the given ID.
func (s *Service) UpdateTodo(code, id string, patch types.TodoPatch) (types.Outcome, error) {
	if err := patch.Validate(); err != nil {
		return types.NotFound, err
	}
	return s.mutate(code, "update_todo", func(doc *types.Document) (types.Outcome, error) {
		i := doc.TodoIndex(id)
		if i == -1 {
			return types.NotFound, nil
		}
		if patch.Category != nil {
			patch.Category = types.Ptr(doc.ResolveCategory(*patch.Category))
		}
		patch.Apply(&doc.Todos[i])
		return types.Applied, nil
	})
}

// ToggleTodo flips the completed flag of the todo with the given ID.
func (s *Service) ToggleTodo(code, id string) (types.Outcome, error) {
	return s.mutate(code, "toggle_todo", func(doc *types.Document) (types.Outcome, error) {
		i := doc.TodoIndex(id)
		if i == -1 {
			return types.NotFound, nil
		}
		doc.Todos[i].Completed = !doc.Todos[i].Completed
		return types.Applied, nil
	})
}

// DeleteTodo removes the todo with the given ID.
func (s *Service) DeleteTodo(code, id string) (types.Outcome, error) {
	return s.mutate(code, "delete_todo", func(doc *types.Document) (types.Outcome, error) {
		before := len(doc.Todos)
		doc.Todos = slices.DeleteFunc(doc.Todos, func(t types.Todo) bool { return t.ID == id })
		return removed(before, len(doc.Todos)), nil
	})
}

// TodosDue returns the todos due on day, in document order.
func (s *Service) TodosDue(code, day string) ([]types.Todo, bool) {
	doc, ok := s.docs.Load(code)
	if !ok {
		return nil, false
	}
	out := []types.Todo{}
	for _, t := range doc.Todos {
		if t.DueDate == day {
			out = append(out, t)
		}
	}
	return out, true
}
