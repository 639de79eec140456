package handlers

import (
	"ecofinds/internal/services"
	"ecofinds/internal/store"
)

type Deps struct {
	PageHandler    *PageHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	ChatHandler    *ChatHandler
	PaymentHandler *PaymentHandler
	ProfileHandler *ProfileHandler
}

func NewDeps(products *store.Products, orders *store.Orders, chat *store.Chat, auth *services.AuthService) *Deps {
	catalogSvc := services.NewCatalogService(products)
	orderSvc := services.NewOrderService(orders)
	paymentSvc := services.NewPaymentService()

	return &Deps{
		PageHandler:    &PageHandler{Catalog: catalogSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc, Products: products},
		OrderHandler:   &OrderHandler{Order: orderSvc},
		ChatHandler:    &ChatHandler{Chat: chat},
		PaymentHandler: &PaymentHandler{Payments: paymentSvc},
		ProfileHandler: &ProfileHandler{Auth: auth},
	}
}
