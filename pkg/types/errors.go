package types

import "errors"

// Entity validation errors.
var (
	ErrInvalidID      = errors.New("invalid entity ID")
	ErrDuplicateID    = errors.New("entity ID already exists")
	ErrInvalidTitle   = errors.New("title must not be empty")
	ErrInvalidName    = errors.New("name must not be empty")
	ErrInvalidDate    = errors.New("invalid calendar date")
	ErrInvalidTime    = errors.New("invalid time of day")
	ErrDefaultFolder  = errors.New("default folder cannot be deleted")
	ErrLastCategory   = errors.New("cannot remove the last category")
	ErrCodeTaken      = errors.New("access code already in use")
	ErrInvalidCode    = errors.New("invalid access code")
	ErrMappingMissing = errors.New("access code mapping was not persisted")
)
