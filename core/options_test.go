package dialogue

import (
	"context"
	"testing"

	"github.com/merelabs/mere-core/config"
	"github.com/merelabs/mere-core/core/conversations"
)

func TestWithConfigNilIsNoop(t *testing.T) {
	registry := NewRegistry(WithConfig(nil))

	conversationID := registry.StartConversation(context.Background(), "u1")
	conversation, err := registry.ProcessTurn(context.Background(), conversationID, newTurn("cancel", 0.9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conversation.State != conversations.StateInterrupted {
		t.Fatalf("expected nil config to keep the default vocabulary")
	}
}

func TestWithLocaleUnknownKeepsConfigured(t *testing.T) {
	registry := NewRegistry(WithLocale("xx"))

	conversationID := registry.StartConversation(context.Background(), "u1")
	conversation, err := registry.ProcessTurn(context.Background(), conversationID, newTurn("cancel", 0.9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conversation.State != conversations.StateInterrupted {
		t.Fatalf("expected fallback to configured locale vocabulary")
	}
}

func TestWithLocaleSwitchesVocabulary(t *testing.T) {
	registry := NewRegistry(WithLocale("ko"))

	conversationID := registry.StartConversation(context.Background(), "u1")
	conversation, err := registry.ProcessTurn(context.Background(), conversationID, newTurn("그만", 0.9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conversation.State != conversations.StateInterrupted {
		t.Fatalf("expected korean cancel token to interrupt, got %q", conversation.State)
	}
}

func TestWithConfirmationThresholdOverride(t *testing.T) {
	registry := NewRegistry(WithConfirmationThreshold(0.8))

	conversationID := registry.StartConversation(context.Background(), "u1")
	conversation, err := registry.ProcessTurn(context.Background(), conversationID, newTurn("create_todo", 0.82))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conversation.State != conversations.StateExecution {
		t.Fatalf("expected 0.82 to clear a lowered threshold, got %q", conversation.State)
	}
}

func TestWithConfidenceFloorOverride(t *testing.T) {
	registry := NewRegistry(WithConfidenceFloor(0))

	conversationID := registry.StartConversation(context.Background(), "u1")
	conversation, err := registry.ProcessTurn(context.Background(), conversationID, newTurn("create_memo", 0.2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conversation.State != conversations.StateConfirmation {
		t.Fatalf("expected disabled floor to route low confidence to gating, got %q", conversation.State)
	}
}

func TestWithConfigCustomDestructiveSet(t *testing.T) {
	cfg := config.Default()
	cfg.DestructiveIntents = append(cfg.DestructiveIntents, "wipe_account")
	registry := NewRegistry(WithConfig(cfg))

	conversationID := registry.StartConversation(context.Background(), "u1")
	conversation, err := registry.ProcessTurn(context.Background(), conversationID, newTurn("wipe_account", 1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conversation.State != conversations.StateConfirmation {
		t.Fatalf("expected configured destructive intent to be gated, got %q", conversation.State)
	}
}
