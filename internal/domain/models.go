package domain

import "time"

// Product is a marketplace listing. The catalog store owns the collection;
// everything else receives copies.
type Product struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Condition    string    `json:"condition"` // new | like new | excellent | good | fair | poor
	Images       []string  `json:"images"`
	Location     string    `json:"location"`
	SellerID     string    `json:"sellerId"`
	SellerName   string    `json:"sellerName"`
	SellerRating float64   `json:"sellerRating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProductPatch carries a partial update; nil fields keep their prior value.
type ProductPatch struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Category     *string  `json:"category"`
	Condition    *string  `json:"condition"`
	Images       []string `json:"images"`
	Location     *string  `json:"location"`
	SellerID     *string  `json:"sellerId"`
	SellerName   *string  `json:"sellerName"`
	SellerRating *float64 `json:"sellerRating"`
}

type OrderItem struct {
	ProductID    string  `json:"productId"`
	ProductTitle string  `json:"productTitle"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Order snapshots product titles and prices at creation time; deleting a
// product later leaves the denormalized copies untouched.
type Order struct {
	ID              string          `json:"id"`
	BuyerName       string          `json:"buyerName"`
	BuyerEmail      string          `json:"buyerEmail"`
	Items           []OrderItem     `json:"items"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"` // processing | shipped | in_transit | delivered | cancelled
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentID       string          `json:"paymentId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type Participants struct {
	BuyerID    string `json:"buyerId"`
	BuyerName  string `json:"buyerName"`
	SellerID   string `json:"sellerId"`
	SellerName string `json:"sellerName"`
}

type Conversation struct {
	ID           string       `json:"id"`
	Participants Participants `json:"participants"`
	ProductID    string       `json:"productId,omitempty"`
	ProductTitle string       `json:"productTitle,omitempty"`
	LastMessage  *Message     `json:"lastMessage,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Categories is the fixed browse vocabulary; it is static data, not rows.
var Categories = []Category{
	{ID: "electronics", Label: "Electronics"},
	{ID: "clothing", Label: "Clothing & Fashion"},
	{ID: "furniture", Label: "Furniture"},
	{ID: "books", Label: "Books & Media"},
	{ID: "sports", Label: "Sports & Fitness"},
	{ID: "home & garden", Label: "Home & Garden"},
	{ID: "toys", Label: "Toys & Games"},
	{ID: "collectibles", Label: "Collectibles"},
}

// Conditions is the fixed condition vocabulary, best first.
var Conditions = []string{"new", "like new", "excellent", "good", "fair", "poor"}
