package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecofinds/internal/domain"
	applog "ecofinds/internal/log"
	"ecofinds/internal/store"
)

type ChatHandler struct {
	Chat *store.Chat
}

// currentUserID resolves the acting user: the session user when signed in,
// then an explicit userId parameter, then the anonymous placeholder.
func currentUserID(c *fiber.Ctx) string {
	if u, ok := c.Locals("user").(*domain.User); ok {
		return u.ID
	}
	if id := strings.TrimSpace(c.Query("userId")); id != "" {
		return id
	}
	return "current-user"
}

// Conversations is GET /api/chat/conversations.
func (h *ChatHandler) Conversations(c *fiber.Ctx) error {
	userID := currentUserID(c)
	conversations := h.Chat.ConversationsFor(userID)
	return c.JSON(fiber.Map{"conversations": conversations, "unread": h.Chat.UnreadCount(userID)})
}

type createConversationRequest struct {
	BuyerID      string `json:"buyerId"`
	BuyerName    string `json:"buyerName"`
	SellerID     string `json:"sellerId"`
	SellerName   string `json:"sellerName"`
	ProductID    string `json:"productId"`
	ProductTitle string `json:"productTitle"`
}

// CreateConversation is POST /api/chat/conversations; returns the existing
// conversation between the two users when there is one.
func (h *ChatHandler) CreateConversation(c *fiber.Ctx) error {
	var req createConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.BuyerID == "" || req.BuyerName == "" || req.SellerID == "" || req.SellerName == "" {
		applog.Security(c, "validation.fail", map[string]any{"field": "participants"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	conversation := h.Chat.CreateOrGet(domain.Participants{
		BuyerID:    req.BuyerID,
		BuyerName:  req.BuyerName,
		SellerID:   req.SellerID,
		SellerName: req.SellerName,
	}, req.ProductID, req.ProductTitle)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"conversation": conversation})
}

// Messages is GET /api/chat/messages?conversationId=. Fetching a thread marks
// the other side's messages as read for the acting user.
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	conversationID := strings.TrimSpace(c.Query("conversationId"))
	if conversationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing conversationId"})
	}
	h.Chat.MarkRead(conversationID, currentUserID(c))
	return c.JSON(fiber.Map{"messages": h.Chat.Messages(conversationID)})
}

type sendMessageRequest struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	Content        string `json:"content"`
}

// SendMessage is POST /api/chat/messages.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if req.ConversationID == "" || req.SenderID == "" || req.SenderName == "" || req.Content == "" {
		applog.Security(c, "validation.fail", map[string]any{"field": "message"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	message := h.Chat.Send(req.ConversationID, req.SenderID, req.SenderName, req.Content)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}
