package planner

import (
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// AddFolder appends f to the document's folders. A nil notes list is stored
// as empty.
func (s *Service) AddFolder(code string, f types.Folder) (types.Outcome, error) {
	if err := f.Validate(); err != nil {
		return types.NotFound, err
	}
	return s.mutate(code, "add_folder", func(doc *types.Document) (types.Outcome, error) {
		if doc.FolderIndex(f.ID) != -1 {
			return types.NotFound, types.ErrDuplicateID
		}
		if f.Notes == nil {
			f.Notes = []types.Note{}
		}
		doc.Folders = append(doc.Folders, f)
		return types.Applied, nil
	})
}

// UpdateFolder merges patch into the folder with the given ID.
func (s *Service) UpdateFolder(code, id string, patch types.FolderPatch) (types.Outcome, error) {
	if err := patch.Validate(); err != nil {
		return types.NotFound, err
	}
	return s.mutate(code, "update_folder", func(doc *types.Document) (types.Outcome, error) {
		i := doc.FolderIndex(id)
		if i == -1 {
			return types.NotFound, nil
		}
		patch.Apply(&doc.Folders[i])
		return types.Applied, nil
	})
}

// DeleteFolder removes the folder with the given ID together with its notes.
// Default folders are removed too unless the service was built with
// WithDefaultFolderProtection.
func (s *Service) DeleteFolder(code, id string) (types.Outcome, error) {
	return s.mutate(code, "delete_folder", func(doc *types.Document) (types.Outcome, error) {
		i := doc.FolderIndex(id)
		if i == -1 {
			return types.NotFound, nil
		}
		if s.protectDefaults && doc.Folders[i].IsDefault {
			return types.NotFound, types.ErrDefaultFolder
		}
		doc.Folders = append(doc.Folders[:i], doc.Folders[i+1:]...)
		return types.Applied, nil
	})
}
