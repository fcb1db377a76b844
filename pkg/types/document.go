package types

import "slices"

// Default category vocabulary of a fresh document. The last entry doubles as
// the literal fallback category.
var DefaultCategories = []string{"개인", "업무", "학교", "기타"}

// FallbackCategory is used when a document has no categories at all.
const FallbackCategory = "기타"

// Document is the single aggregate record holding all of one user's data.
// It is always persisted whole, keyed by AccessCode (the system code).
type Document struct {
	AccessCode string     `json:"accessCode" yaml:"accessCode"`
	Schedules  []Schedule `json:"schedules" yaml:"schedules"`
	Todos      []Todo     `json:"todos" yaml:"todos"`
	Folders    []Folder   `json:"folders" yaml:"folders"`
	Categories []string   `json:"categories" yaml:"categories"`
}

// Normalize replaces nil collections with empty ones so that a loaded document
// always serializes with arrays rather than nulls.
func (d *Document) Normalize() {
	if d.Schedules == nil {
		d.Schedules = []Schedule{}
	}
	if d.Todos == nil {
		d.Todos = []Todo{}
	}
	if d.Folders == nil {
		d.Folders = []Folder{}
	}
	if d.Categories == nil {
		d.Categories = []string{}
	}
	for i := range d.Folders {
		if d.Folders[i].Notes == nil {
			d.Folders[i].Notes = []Note{}
		}
	}
}

// HasCategory reports whether name is part of the category vocabulary.
func (d *Document) HasCategory(name string) bool {
	return slices.Contains(d.Categories, name)
}

// ResolveCategory returns name when it belongs to the vocabulary. Otherwise it
// falls back to the first category, or FallbackCategory when the vocabulary is
// empty.
func (d *Document) ResolveCategory(name string) string {
	if d.HasCategory(name) {
		return name
	}
	if len(d.Categories) > 0 {
		return d.Categories[0]
	}
	return FallbackCategory
}

// FolderIndex returns the index of the folder with the given ID, or -1.
func (d *Document) FolderIndex(id string) int {
	return slices.IndexFunc(d.Folders, func(f Folder) bool { return f.ID == id })
}

// FindNote locates a note across all folders. It returns the folder and note
// indexes, or -1, -1 when no folder holds the note.
func (d *Document) FindNote(id string) (folder, note int) {
	for fi := range d.Folders {
		if ni := d.Folders[fi].NoteIndex(id); ni != -1 {
			return fi, ni
		}
	}
	return -1, -1
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{
		AccessCode: d.AccessCode,
		Schedules:  slices.Clone(d.Schedules),
		Todos:      slices.Clone(d.Todos),
		Folders:    make([]Folder, len(d.Folders)),
		Categories: slices.Clone(d.Categories),
	}
	for i, f := range d.Folders {
		f.Notes = slices.Clone(f.Notes)
		c.Folders[i] = f
	}
	c.Normalize()
	return c
}
