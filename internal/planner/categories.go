package planner

import (
	"slices"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// AddCategory appends name to the category vocabulary. Adding a category that
// is already present is Applied without a write.
func (s *Service) AddCategory(code, name string) (types.Outcome, error) {
	if name == "" {
		return types.NotFound, types.ErrInvalidName
	}
	doc, ok := s.docs.Load(code)
	if !ok {
		return types.NotFound, nil
	}
	if doc.HasCategory(name) {
		return types.Applied, nil
	}
	doc.Categories = append(doc.Categories, name)
	if err := s.docs.Save(doc); err != nil {
		return types.NotFound, err
	}
	return types.Applied, nil
}

// RemoveCategory drops name from the vocabulary. Entities that still carry the
// category keep it; the vocabulary is not enforced on stored values. The last
// remaining category cannot be removed.
func (s *Service) RemoveCategory(code, name string) (types.Outcome, error) {
	return s.mutate(code, "remove_category", func(doc *types.Document) (types.Outcome, error) {
		i := slices.Index(doc.Categories, name)
		if i == -1 {
			return types.NotFound, nil
		}
		if len(doc.Categories) == 1 {
			return types.NotFound, types.ErrLastCategory
		}
		doc.Categories = slices.Delete(doc.Categories, i, i+1)
		return types.Applied, nil
	})
}
