package types

import (
	"slices"
	"time"
)

// Folder owns an ordered list of notes. Default folders are created with the
// document, one per default category.
type Folder struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	IsDefault bool   `json:"isDefault" yaml:"isDefault"`
	Notes     []Note `json:"notes" yaml:"notes"`
}

// Note is a free-form text entry. A note lives in exactly one folder.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
	Category  string    `json:"category" yaml:"category"`
	FolderID  string    `json:"folderId" yaml:"folderId"`
}

// DefaultFolderID returns the ID given to the default folder of category.
func DefaultFolderID(category string) string {
	return "folder_" + category
}

// Validate checks the required fields of a folder.
func (f *Folder) Validate() error {
	if f.ID == "" {
		return ErrInvalidID
	}
	if f.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// NoteIndex returns the index of the note with the given ID, or -1.
func (f *Folder) NoteIndex(id string) int {
	return slices.IndexFunc(f.Notes, func(n Note) bool { return n.ID == id })
}

// Validate checks the required fields of a note.
func (n *Note) Validate() error {
	if n.ID == "" || n.FolderID == "" {
		return ErrInvalidID
	}
	if n.Title == "" {
		return ErrInvalidTitle
	}
	return nil
}
