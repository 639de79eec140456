package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedPayment = errors.New("unsupported payment method")

// PaymentService simulates a payment provider. No card data is touched; the
// result shapes mirror what a Stripe/PayPal integration would hand back.
type PaymentService struct{}

func NewPaymentService() *PaymentService { return &PaymentService{} }

type PaymentResult struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   any    `json:"amount"`
	Currency string `json:"currency"`
	Created  any    `json:"created"`
}

func (s *PaymentService) Process(method string, amount float64, orderID string) (PaymentResult, error) {
	now := time.Now().UTC()
	switch method {
	case "card":
		return PaymentResult{
			ID:       fmt.Sprintf("pi_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
			Status:   "succeeded",
			Amount:   int64(math.Round(amount * 100)), // cents
			Currency: "usd",
			Created:  now.Unix(),
		}, nil
	case "paypal":
		return PaymentResult{
			ID:       fmt.Sprintf("PAYID-%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
			Status:   "COMPLETED",
			Amount:   amount,
			Currency: "USD",
			Created:  now.Format(time.RFC3339),
		}, nil
	default:
		return PaymentResult{}, ErrUnsupportedPayment
	}
}
