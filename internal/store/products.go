// Package store holds the process-lifetime in-memory collections. Each store
// owns its slice exclusively and hands out copies; a single mutex per
// collection guards against concurrent requests from the HTTP host.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ecofinds/internal/domain"
)

// Products is the authoritative catalog collection, kept in insertion order.
type Products struct {
	mu    sync.Mutex
	items []domain.Product
}

func NewProducts() *Products {
	return &Products{}
}

// NewSeededProducts returns a catalog pre-loaded with the demo listings.
func NewSeededProducts() *Products {
	return &Products{items: seedProducts()}
}

// All returns a snapshot of the collection in insertion order.
func (s *Products) All() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Products) Get(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Create assigns a fresh id and both timestamps, appends the record and
// returns it. Field validation is the caller's job.
func (s *Products) Create(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.items = append(s.items, p)
	return p
}

// Update merges the non-nil patch fields over the stored record and refreshes
// UpdatedAt. The second return reports whether the id was found.
func (s *Products) Update(id string, patch domain.ProductPatch) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		p := &s.items[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Condition != nil {
			p.Condition = *patch.Condition
		}
		if patch.Images != nil {
			p.Images = patch.Images
		}
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.SellerID != nil {
			p.SellerID = *patch.SellerID
		}
		if patch.SellerName != nil {
			p.SellerName = *patch.SellerName
		}
		if patch.SellerRating != nil {
			p.SellerRating = *patch.SellerRating
		}
		p.UpdatedAt = time.Now().UTC()
		return *p, true
	}
	return domain.Product{}, false
}

// Delete removes the record and reports whether anything was removed.
// Deleting an unknown id is a no-op, not an error.
func (s *Products) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
