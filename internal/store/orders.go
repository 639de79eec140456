package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecofinds/internal/domain"
)

// Orders holds the mock order history. Item titles and prices are copied from
// the catalog at creation time and never refreshed.
type Orders struct {
	mu    sync.Mutex
	items []domain.Order
}

func NewOrders() *Orders {
	return &Orders{}
}

func NewSeededOrders() *Orders {
	return &Orders{items: seedOrders()}
}

func (s *Orders) All() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Orders) Get(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.items {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Orders) Create(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	o.ID = fmt.Sprintf("ORD-%d-%s", now.Year(), uuid.NewString()[:8])
	o.CreatedAt = now
	o.UpdatedAt = now
	s.items = append(s.items, o)
	return o
}

// Search matches the query against order id, buyer name, buyer email and the
// item titles. An empty query returns everything.
func (s *Orders) Search(query string) []domain.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, 0, len(s.items))
	for _, o := range s.items {
		var titles []string
		for _, it := range o.Items {
			titles = append(titles, it.ProductTitle)
		}
		text := strings.ToLower(o.ID + " " + o.BuyerName + " " + o.BuyerEmail + " " + strings.Join(titles, " "))
		if strings.Contains(text, q) {
			out = append(out, o)
		}
	}
	return out
}
