package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecofinds/internal/domain"
)

// Chat holds buyer/seller conversations and their messages.
type Chat struct {
	mu            sync.Mutex
	conversations []domain.Conversation
	messages      []domain.Message
}

func NewChat() *Chat {
	return &Chat{}
}

// ConversationsFor returns the conversations a user participates in, each
// annotated with its latest message, most recently active first.
func (s *Chat) ConversationsFor(userID string) []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Conversation, 0)
	for _, c := range s.conversations {
		if c.Participants.BuyerID != userID && c.Participants.SellerID != userID {
			continue
		}
		c.LastMessage = s.lastMessageLocked(c.ID)
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lastActivity(out[i]).After(lastActivity(out[j]))
	})
	return out
}

func lastActivity(c domain.Conversation) time.Time {
	if c.LastMessage != nil {
		return c.LastMessage.Timestamp
	}
	return c.CreatedAt
}

func (s *Chat) lastMessageLocked(conversationID string) *domain.Message {
	var last *domain.Message
	for i := range s.messages {
		m := s.messages[i]
		if m.ConversationID != conversationID {
			continue
		}
		if last == nil || m.Timestamp.After(last.Timestamp) {
			last = &m
		}
	}
	if last == nil {
		return nil
	}
	cp := *last
	return &cp
}

// CreateOrGet returns the existing conversation between the two users, in
// either role order, or creates a new one.
func (s *Chat) CreateOrGet(p domain.Participants, productID, productTitle string) domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conversations {
		same := c.Participants.BuyerID == p.BuyerID && c.Participants.SellerID == p.SellerID
		swapped := c.Participants.BuyerID == p.SellerID && c.Participants.SellerID == p.BuyerID
		if same || swapped {
			return c
		}
	}
	now := time.Now().UTC()
	c := domain.Conversation{
		ID:           uuid.NewString(),
		Participants: p,
		ProductID:    productID,
		ProductTitle: productTitle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.conversations = append(s.conversations, c)
	return c
}

// Messages returns a conversation's messages oldest first.
func (s *Chat) Messages(conversationID string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, 0)
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Send appends a message and bumps the conversation's UpdatedAt.
func (s *Chat) Send(conversationID, senderID, senderName, content string) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	m := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderName:     senderName,
		Content:        content,
		Timestamp:      now,
	}
	s.messages = append(s.messages, m)
	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			s.conversations[i].UpdatedAt = now
			break
		}
	}
	return m
}

// MarkRead marks every message in the conversation not sent by userID as read.
func (s *Chat) MarkRead(conversationID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		m := &s.messages[i]
		if m.ConversationID == conversationID && m.SenderID != userID {
			m.Read = true
		}
	}
}

// UnreadCount reports messages addressed to userID that are still unread.
func (s *Chat) UnreadCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	byConv := map[string]domain.Participants{}
	for _, c := range s.conversations {
		byConv[c.ID] = c.Participants
	}
	n := 0
	for _, m := range s.messages {
		p, ok := byConv[m.ConversationID]
		if !ok || m.Read || m.SenderID == userID {
			continue
		}
		if p.BuyerID == userID || p.SellerID == userID {
			n++
		}
	}
	return n
}
