package store

import (
	"testing"

	"ecofinds/internal/domain"
)

func TestProductsCRUDRoundTrip(t *testing.T) {
	s := NewProducts()

	created := s.Create(domain.Product{
		Title: "Retro Lamp", Description: "Bakelite desk lamp", Price: 40,
		Category: "furniture", Condition: "good", Location: "Austin, TX",
		Images: []string{"/img/lamp.jpg"}, SellerID: "u1", SellerName: "Dana", SellerRating: 4.5,
	})
	if created.ID == "" {
		t.Fatal("create did not assign an id")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatal("create timestamps differ")
	}

	got, ok := s.Get(created.ID)
	if !ok {
		t.Fatal("created product not found")
	}
	if got.Title != created.Title || got.Price != created.Price || !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("round-trip mismatch: %+v vs %+v", got, created)
	}

	price := 99.0
	updated, ok := s.Update(created.ID, domain.ProductPatch{Price: &price})
	if !ok {
		t.Fatal("update reported not found")
	}
	if updated.Price != 99 {
		t.Fatalf("price = %v, want 99", updated.Price)
	}
	if updated.Title != created.Title || updated.Location != created.Location {
		t.Fatal("update touched fields not in the patch")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("UpdatedAt not strictly newer after update")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update changed CreatedAt")
	}

	if !s.Delete(created.ID) {
		t.Fatal("delete reported nothing removed")
	}
	if _, ok := s.Get(created.ID); ok {
		t.Fatal("product still present after delete")
	}
	if s.Delete(created.ID) {
		t.Fatal("second delete should report false")
	}
}

func TestProductsUpdateUnknownID(t *testing.T) {
	s := NewProducts()
	if _, ok := s.Update("nope", domain.ProductPatch{}); ok {
		t.Fatal("update of unknown id reported found")
	}
}

func TestProductsAllIsInsertionOrderedSnapshot(t *testing.T) {
	s := NewProducts()
	a := s.Create(domain.Product{Title: "A"})
	b := s.Create(domain.Product{Title: "B"})
	c := s.Create(domain.Product{Title: "C"})

	all := s.All()
	if len(all) != 3 || all[0].ID != a.ID || all[1].ID != b.ID || all[2].ID != c.ID {
		t.Fatalf("unexpected order: %v", all)
	}

	// Mutating the snapshot must not touch the store.
	all[0].Title = "mutated"
	fresh, _ := s.Get(a.ID)
	if fresh.Title != "A" {
		t.Fatal("snapshot mutation leaked into the store")
	}
}

func TestSeededCatalog(t *testing.T) {
	s := NewSeededProducts()
	all := s.All()
	if len(all) != 6 {
		t.Fatalf("seeded catalog has %d products, want 6", len(all))
	}
	mac, ok := s.Get("2")
	if !ok || mac.Title != "MacBook Air M1 (2020)" || mac.Price != 850 {
		t.Fatalf("unexpected seed for id 2: %+v", mac)
	}
}
