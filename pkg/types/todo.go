package types

import (
	"slices"
	"time"
)

// Todo is a task that can be marked completed. Unlike notes, todos carry no
// update timestamp.
type Todo struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Description     string    `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate         string    `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Category        string    `json:"category" yaml:"category"`
	Completed       bool      `json:"completed" yaml:"completed"`
	Emoji           string    `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	TextColor       string    `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	CreatedAt       time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate checks the required fields of a todo. DueDate is optional but must
// be a calendar date when set.
func (t *Todo) Validate() error {
	if t.ID == "" {
		return ErrInvalidID
	}
	if t.Title == "" {
		return ErrInvalidTitle
	}
	if t.DueDate != "" && !ValidDate(t.DueDate) {
		return ErrInvalidDate
	}
	return nil
}

// TodoIndex returns the index of the todo with the given ID, or -1.
func (d *Document) TodoIndex(id string) int {
	return slices.IndexFunc(d.Todos, func(t Todo) bool { return t.ID == id })
}
