package store

import (
	"time"

	"ecofinds/internal/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Title:       "Vintage Wooden Coffee Table",
			Description: "Beautiful solid oak coffee table with natural wood grain. Perfect for living room or study. Shows minimal wear and has been well-maintained.",
			Price:       150,
			Category:    "furniture",
			Condition:   "good",
			Images:      []string{"/placeholder.svg?height=300&width=300&text=Wooden+Coffee+Table"},
			Location:    "San Francisco, CA",
			SellerID:    "seller1", SellerName: "Sarah Johnson", SellerRating: 4.8,
			CreatedAt: ts("2024-01-15T10:30:00Z"), UpdatedAt: ts("2024-01-15T10:30:00Z"),
		},
		{
			ID:          "2",
			Title:       "MacBook Air M1 (2020)",
			Description: "Excellent condition MacBook Air with M1 chip, 8GB RAM, 256GB SSD. Includes original charger and box. Perfect for students or professionals.",
			Price:       850,
			Category:    "electronics",
			Condition:   "excellent",
			Images:      []string{"/placeholder.svg?height=300&width=300&text=MacBook+Air"},
			Location:    "New York, NY",
			SellerID:    "seller2", SellerName: "Mike Chen", SellerRating: 4.9,
			CreatedAt: ts("2024-01-14T14:20:00Z"), UpdatedAt: ts("2024-01-14T14:20:00Z"),
		},
		{
			ID:          "3",
			Title:       "Designer Winter Coat",
			Description: "Stylish wool blend winter coat in navy blue. Size Medium. Barely worn, excellent for cold weather. From a smoke-free home.",
			Price:       75,
			Category:    "clothing",
			Condition:   "like new",
			Images:      []string{"/placeholder.svg?height=300&width=300&text=Winter+Coat"},
			Location:    "Chicago, IL",
			SellerID:    "seller3", SellerName: "Emma Davis", SellerRating: 4.7,
			CreatedAt: ts("2024-01-13T09:15:00Z"), UpdatedAt: ts("2024-01-13T09:15:00Z"),
		},
		{
			ID:          "4",
			Title:       "Complete Book Set - Harry Potter Series",
			Description: "Complete set of Harry Potter books in hardcover. All 7 books included. Great condition with minimal shelf wear. Perfect for collectors or new readers.",
			Price:       45,
			Category:    "books",
			Condition:   "good",
			Images:      []string{"/placeholder.svg?height=300&width=300&text=Harry+Potter+Books"},
			Location:    "Austin, TX",
			SellerID:    "seller4", SellerName: "David Wilson", SellerRating: 4.6,
			CreatedAt: ts("2024-01-12T16:45:00Z"), UpdatedAt: ts("2024-01-12T16:45:00Z"),
		},
		{
			ID:          "5",
			Title:       "Professional Tennis Racket",
			Description: "Wilson Pro Staff tennis racket, lightly used. Great for intermediate to advanced players. Includes protective cover and grip tape.",
			Price:       120,
			Category:    "sports",
			Condition:   "good",
			Images:      []string{"/placeholder.svg?height=300&width=300&text=Tennis+Racket"},
			Location:    "Miami, FL",
			SellerID:    "seller5", SellerName: "Lisa Rodriguez", SellerRating: 4.8,
			CreatedAt: ts("2024-01-11T11:30:00Z"), UpdatedAt: ts("2024-01-11T11:30:00Z"),
		},
		{
			ID:          "6",
			Title:       "Ceramic Plant Pots Set",
			Description: "Set of 3 beautiful ceramic plant pots in different sizes. Perfect for indoor plants. Includes drainage holes and saucers.",
			Price:       35,
			Category:    "home & garden",
			Condition:   "excellent",
			Images:      []string{"/placeholder.svg?height=300&width=300&text=Plant+Pots"},
			Location:    "Portland, OR",
			SellerID:    "seller6", SellerName: "Alex Thompson", SellerRating: 4.9,
			CreatedAt: ts("2024-01-10T13:20:00Z"), UpdatedAt: ts("2024-01-10T13:20:00Z"),
		},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID: "ORD-2024-001", BuyerName: "John Smith", BuyerEmail: "john.smith@example.com",
			Items: []domain.OrderItem{
				{ProductID: "2", ProductTitle: "MacBook Air M1 (2020)", Quantity: 1, Price: 850},
			},
			Total: 850, Status: "delivered",
			ShippingAddress: domain.ShippingAddress{Street: "123 Main St", City: "Boston", State: "MA", ZipCode: "02101", Country: "USA"},
			PaymentID:       "pi_1234567890",
			CreatedAt:       ts("2024-01-10T10:00:00Z"), UpdatedAt: ts("2024-01-15T14:30:00Z"),
		},
		{
			ID: "ORD-2024-002", BuyerName: "Sarah Johnson", BuyerEmail: "sarah.j@example.com",
			Items: []domain.OrderItem{
				{ProductID: "1", ProductTitle: "Vintage Wooden Coffee Table", Quantity: 1, Price: 150},
				{ProductID: "6", ProductTitle: "Ceramic Plant Pots Set", Quantity: 1, Price: 35},
			},
			Total: 185, Status: "shipped",
			ShippingAddress: domain.ShippingAddress{Street: "456 Oak Ave", City: "Portland", State: "OR", ZipCode: "97201", Country: "USA"},
			PaymentID:       "pi_0987654321",
			CreatedAt:       ts("2024-01-12T15:30:00Z"), UpdatedAt: ts("2024-01-14T09:15:00Z"),
		},
		{
			ID: "ORD-2024-003", BuyerName: "Mike Chen", BuyerEmail: "mike.chen@example.com",
			Items: []domain.OrderItem{
				{ProductID: "3", ProductTitle: "Designer Winter Coat", Quantity: 1, Price: 75},
			},
			Total: 75, Status: "processing",
			ShippingAddress: domain.ShippingAddress{Street: "789 Pine St", City: "Seattle", State: "WA", ZipCode: "98101", Country: "USA"},
			PaymentID:       "pi_1122334455",
			CreatedAt:       ts("2024-01-14T11:20:00Z"), UpdatedAt: ts("2024-01-14T11:20:00Z"),
		},
	}
}
