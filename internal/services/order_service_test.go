package services

import (
	"math"
	"testing"

	"ecofinds/internal/domain"
	"ecofinds/internal/store"
)

func macbookOrder(total float64) PlaceOrderInput {
	return PlaceOrderInput{
		BuyerName:  "Ana",
		BuyerEmail: "ana@example.com",
		Items: []domain.OrderItem{
			{ProductID: "2", ProductTitle: "MacBook Air M1 (2020)", Quantity: 1, Price: 850},
		},
		ShippingAddress: domain.ShippingAddress{Street: "1 Pine St", City: "Seattle", State: "WA", ZipCode: "98101", Country: "USA"},
		Total:           total,
	}
}

func TestPlaceRecomputesTotal(t *testing.T) {
	svc := NewOrderService(store.NewOrders())

	want := 850 + standardShipping + 850*taxRate
	order, err := svc.Place(macbookOrder(want))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if math.Abs(order.Total-want) > 0.001 {
		t.Fatalf("total = %v, want %v", order.Total, want)
	}
	if order.Status != "processing" {
		t.Fatalf("status = %q", order.Status)
	}
	if order.ID == "" || order.PaymentID == "" {
		t.Fatal("missing generated ids")
	}

	got, ok := svc.Orders.Get(order.ID)
	if !ok || got.Items[0].ProductTitle != "MacBook Air M1 (2020)" {
		t.Fatalf("stored order mismatch: %+v", got)
	}
}

func TestPlaceRejectsTotalMismatch(t *testing.T) {
	svc := NewOrderService(store.NewOrders())
	if _, err := svc.Place(macbookOrder(850)); err != ErrTotalMismatch {
		t.Fatalf("err = %v, want ErrTotalMismatch", err)
	}
}

func TestPlaceExpressShipping(t *testing.T) {
	svc := NewOrderService(store.NewOrders())
	in := macbookOrder(850 + expressShipping + 850*taxRate)
	in.ShippingMethod = "express"
	if _, err := svc.Place(in); err != nil {
		t.Fatalf("express place: %v", err)
	}
}

func TestListFilters(t *testing.T) {
	svc := NewOrderService(store.NewSeededOrders())

	all := svc.List("", "", "")
	if len(all) != 3 {
		t.Fatalf("got %d orders, want 3", len(all))
	}
	// Newest first
	if all[0].ID != "ORD-2024-003" || all[2].ID != "ORD-2024-001" {
		t.Fatalf("order of orders: %s .. %s", all[0].ID, all[2].ID)
	}

	shipped := svc.List("", "shipped", "")
	if len(shipped) != 1 || shipped[0].ID != "ORD-2024-002" {
		t.Fatalf("status filter: %+v", shipped)
	}

	byTitle := svc.List("macbook", "", "")
	if len(byTitle) != 1 || byTitle[0].ID != "ORD-2024-001" {
		t.Fatalf("search filter: %+v", byTitle)
	}

	// The seeds are from January 2024; a 7-day window only sees new orders.
	if recent := svc.List("", "", "7days"); len(recent) != 0 {
		t.Fatalf("7days window returned %d seeded orders", len(recent))
	}
	fresh, err := svc.Place(macbookOrder(850 + standardShipping + 850*taxRate))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	recent := svc.List("", "", "7days")
	if len(recent) != 1 || recent[0].ID != fresh.ID {
		t.Fatalf("7days window: %+v", recent)
	}
}

func TestPaymentSimulation(t *testing.T) {
	svc := NewPaymentService()

	card, err := svc.Process("card", 9.5, "ORD-X")
	if err != nil {
		t.Fatalf("card: %v", err)
	}
	if card.Status != "succeeded" || card.Currency != "usd" {
		t.Fatalf("card result: %+v", card)
	}
	if cents, ok := card.Amount.(int64); !ok || cents != 950 {
		t.Fatalf("card amount: %+v", card.Amount)
	}

	paypal, err := svc.Process("paypal", 20, "ORD-X")
	if err != nil {
		t.Fatalf("paypal: %v", err)
	}
	if paypal.Status != "COMPLETED" || paypal.Currency != "USD" {
		t.Fatalf("paypal result: %+v", paypal)
	}

	if _, err := svc.Process("barter", 1, "ORD-X"); err != ErrUnsupportedPayment {
		t.Fatalf("err = %v, want ErrUnsupportedPayment", err)
	}
}
