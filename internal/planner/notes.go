package planner

import (
	"slices"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// AddNote appends n to the notes of the folder named by n.FolderID. A missing
// folder yields NotFound. Note IDs are unique across all folders.
func (s *Service) AddNote(code string, n types.Note) (types.Outcome, error) {
	if err := n.Validate(); err != nil {
		return types.NotFound, err
	}
	return s.mutate(code, "add_note", func(doc *types.Document) (types.Outcome, error) {
		fi := doc.FolderIndex(n.FolderID)
		if fi == -1 {
			return types.NotFound, nil
		}
		if f, _ := doc.FindNote(n.ID); f != -1 {
			return types.NotFound, types.ErrDuplicateID
		}
		n.Category = doc.ResolveCategory(n.Category)
		now := s.timestamp()
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		if n.UpdatedAt.IsZero() {
			n.UpdatedAt = n.CreatedAt
		}
		doc.Folders[fi].Notes = append(doc.Folders[fi].Notes, n)
		return types.Applied, nil
	})
}

// UpdateNote merges patch into the note with the given ID, wherever it lives,
// and stamps UpdatedAt with the current time.
func (s *Service) UpdateNote(code, id string, patch types.NotePatch) (types.Outcome, error) {
	if err := patch.Validate(); err != nil {
		return types.NotFound, err
	}
	return s.mutate(code, "update_note", func(doc *types.Document) (types.Outcome, error) {
		fi, ni := doc.FindNote(id)
		if fi == -1 {
			return types.NotFound, nil
		}
		if patch.Category != nil {
			patch.Category = types.Ptr(doc.ResolveCategory(*patch.Category))
		}
		note := &doc.Folders[fi].Notes[ni]
		patch.Apply(note)
		note.UpdatedAt = s.timestamp()
		return types.Applied, nil
	})
}

// DeleteNote removes the note with the given ID from every folder.
func (s *Service) DeleteNote(code, id string) (types.Outcome, error) {
	return s.mutate(code, "delete_note", func(doc *types.Document) (types.Outcome, error) {
		outcome := types.NotFound
		for i := range doc.Folders {
			before := len(doc.Folders[i].Notes)
			doc.Folders[i].Notes = slices.DeleteFunc(doc.Folders[i].Notes, func(n types.Note) bool { return n.ID == id })
			if removed(before, len(doc.Folders[i].Notes)) == types.Applied {
				outcome = types.Applied
			}
		}
		return outcome, nil
	})
}
