package types

import (
	"slices"
	"time"
)

// Date and time-of-day layouts used by schedule and todo fields.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Schedule is a calendar entry on a given date.
type Schedule struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Content         string    `json:"content,omitempty" yaml:"content,omitempty"`
	Date            string    `json:"date" yaml:"date"`
	StartTime       string    `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	EndTime         string    `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	Category        string    `json:"category" yaml:"category"`
	Emoji           string    `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	TextColor       string    `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	CreatedAt       time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate checks the required fields of a schedule.
func (s *Schedule) Validate() error {
	if s.ID == "" {
		return ErrInvalidID
	}
	if s.Title == "" {
		return ErrInvalidTitle
	}
	if !ValidDate(s.Date) {
		return ErrInvalidDate
	}
	if !validOptionalClock(s.StartTime) || !validOptionalClock(s.EndTime) {
		return ErrInvalidTime
	}
	return nil
}

// ValidDate reports whether s is a calendar date in DateLayout.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidClock reports whether s is a time of day in ClockLayout.
func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

func validOptionalClock(s string) bool {
	return s == "" || ValidClock(s)
}

// ScheduleIndex returns the index of the schedule with the given ID, or -1.
func (d *Document) ScheduleIndex(id string) int {
	return slices.IndexFunc(d.Schedules, func(s Schedule) bool { return s.ID == id })
}
