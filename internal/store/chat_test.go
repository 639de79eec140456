package store

import (
	"testing"

	"ecofinds/internal/domain"
)

func participants() domain.Participants {
	return domain.Participants{BuyerID: "buyer1", BuyerName: "Ana", SellerID: "seller1", SellerName: "Sarah Johnson"}
}

func TestChatCreateOrGetDeduplicates(t *testing.T) {
	s := NewChat()
	c1 := s.CreateOrGet(participants(), "1", "Vintage Wooden Coffee Table")
	c2 := s.CreateOrGet(participants(), "1", "Vintage Wooden Coffee Table")
	if c1.ID != c2.ID {
		t.Fatal("same participants created two conversations")
	}

	// Roles swapped still resolves to the same thread.
	swapped := domain.Participants{BuyerID: "seller1", BuyerName: "Sarah Johnson", SellerID: "buyer1", SellerName: "Ana"}
	c3 := s.CreateOrGet(swapped, "", "")
	if c3.ID != c1.ID {
		t.Fatal("swapped roles created a new conversation")
	}
}

func TestChatMessagesAndRead(t *testing.T) {
	s := NewChat()
	conv := s.CreateOrGet(participants(), "", "")

	s.Send(conv.ID, "buyer1", "Ana", "Is this still available?")
	s.Send(conv.ID, "seller1", "Sarah Johnson", "Yes it is!")

	msgs := s.Messages(conv.ID)
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Content != "Is this still available?" {
		t.Fatal("messages not oldest-first")
	}

	if n := s.UnreadCount("buyer1"); n != 1 {
		t.Fatalf("buyer unread = %d, want 1", n)
	}
	s.MarkRead(conv.ID, "buyer1")
	if n := s.UnreadCount("buyer1"); n != 0 {
		t.Fatalf("buyer unread after read = %d, want 0", n)
	}

	// lastMessage annotation and activity ordering
	convs := s.ConversationsFor("buyer1")
	if len(convs) != 1 || convs[0].LastMessage == nil || convs[0].LastMessage.Content != "Yes it is!" {
		t.Fatalf("conversation listing missing last message: %+v", convs)
	}
	if len(s.ConversationsFor("someone-else")) != 0 {
		t.Fatal("non-participant sees the conversation")
	}
}
