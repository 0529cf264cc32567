package importer

import "github.com/google/uuid"

// SeenNames is the per-run memory of product names already handled and of
// taxonomy nodes already counted. One run owns one table.
type SeenNames struct {
	products   map[string]uuid.UUID
	categories map[string]bool
	brands     map[string]bool
}

func NewSeenNames() *SeenNames {
	return &SeenNames{
		products:   make(map[string]uuid.UUID),
		categories: make(map[string]bool),
		brands:     make(map[string]bool),
	}
}

// Product returns the id recorded for name. In preview runs the id is uuid.Nil.
func (s *SeenNames) Product(name string) (uuid.UUID, bool) {
	id, ok := s.products[name]
	return id, ok
}

func (s *SeenNames) AddProduct(name string, id uuid.UUID) {
	s.products[name] = id
}

// MarkCategory reports whether name was not marked before.
func (s *SeenNames) MarkCategory(name string) bool {
	if s.categories[name] {
		return false
	}
	s.categories[name] = true
	return true
}

// MarkBrand reports whether name was not marked before.
func (s *SeenNames) MarkBrand(name string) bool {
	if s.brands[name] {
		return false
	}
	s.brands[name] = true
	return true
}

func (s *SeenNames) Len() int { return len(s.products) }
