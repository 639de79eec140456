package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"ecofinds/internal/domain"
	"ecofinds/internal/store"
)

const (
	standardShipping = 5.99
	expressShipping  = 12.99
	taxRate          = 0.0875
)

var ErrTotalMismatch = errors.New("total amount mismatch")

type OrderService struct {
	Orders *store.Orders
}

func NewOrderService(orders *store.Orders) *OrderService {
	return &OrderService{Orders: orders}
}

type PlaceOrderInput struct {
	BuyerName       string
	BuyerEmail      string
	Items           []domain.OrderItem
	ShippingAddress domain.ShippingAddress
	ShippingMethod  string // standard | express
	PaymentID       string
	Total           float64
}

// Place recomputes the order total server-side and rejects a client total
// that is off by more than a cent, then records the order as processing.
func (s *OrderService) Place(in PlaceOrderInput) (domain.Order, error) {
	if len(in.Items) == 0 {
		return domain.Order{}, errors.New("order has no items")
	}

	subtotal := 0.0
	for _, it := range in.Items {
		subtotal += it.Price * float64(it.Quantity)
	}
	shipping := standardShipping
	if in.ShippingMethod == "express" {
		shipping = expressShipping
	}
	total := subtotal + shipping + subtotal*taxRate

	if math.Abs(total-in.Total) > 0.01 {
		return domain.Order{}, ErrTotalMismatch
	}

	buyerName := in.BuyerName
	if buyerName == "" {
		buyerName = "Anonymous Buyer"
	}
	buyerEmail := in.BuyerEmail
	if buyerEmail == "" {
		buyerEmail = "buyer@example.com"
	}
	paymentID := in.PaymentID
	if paymentID == "" {
		paymentID = fmt.Sprintf("pi_%d", time.Now().UnixMilli())
	}

	order := s.Orders.Create(domain.Order{
		BuyerName:       buyerName,
		BuyerEmail:      buyerEmail,
		Items:           in.Items,
		Total:           total,
		Status:          "processing",
		ShippingAddress: in.ShippingAddress,
		PaymentID:       paymentID,
	})
	return order, nil
}

// List applies the order-history filters: free-text search, status equality
// and a recency window, newest first.
func (s *OrderService) List(query, status, timeFilter string) []domain.Order {
	orders := s.Orders.Search(query)

	if status != "" && status != "all" {
		kept := orders[:0]
		for _, o := range orders {
			if o.Status == status {
				kept = append(kept, o)
			}
		}
		orders = kept
	}

	if timeFilter != "" && timeFilter != "all" {
		var days int
		switch timeFilter {
		case "7days":
			days = 7
		case "30days":
			days = 30
		case "90days":
			days = 90
		}
		if days > 0 {
			cutoff := time.Now().AddDate(0, 0, -days)
			kept := orders[:0]
			for _, o := range orders {
				if !o.CreatedAt.Before(cutoff) {
					kept = append(kept, o)
				}
			}
			orders = kept
		}
	}

	// Newest first; Search already returned a private copy.
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders
}
