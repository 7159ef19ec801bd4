package conversations

import (
	"testing"

	"github.com/merelabs/mere-core/core/entities"
)

func TestNewConversationDefaults(t *testing.T) {
	conversation := New("u1", "c1")

	if conversation.State != StateParsing {
		t.Fatalf("expected fresh conversation in %q, got %q", StateParsing, conversation.State)
	}
	if conversation.Entities.Len() != 0 {
		t.Fatalf("expected no entities, got %d", conversation.Entities.Len())
	}
	if conversation.UpdatedAt.Before(conversation.CreatedAt) {
		t.Fatalf("expected updated_at >= created_at")
	}
}

func TestStateValidity(t *testing.T) {
	for _, state := range []State{StateParsing, StateValidation, StateConfirmation,
		StateExecution, StateResponse, StateInterrupted, StateCompleted} {
		if !state.IsValid() {
			t.Fatalf("expected %q to be valid", state)
		}
	}
	if State("limbo").IsValid() {
		t.Fatalf("expected unknown state to be invalid")
	}
	if StateParsing.IsTerminal() || !StateCompleted.IsTerminal() {
		t.Fatalf("expected completed to be the only terminal state")
	}
}

func TestCloneIsDeep(t *testing.T) {
	conversation := New("u1", "c1")
	conversation.Entities.Set("title", entities.String("standup"))
	conversation.PreviousContext = map[string]any{"timezone": "Asia/Seoul"}

	clone := conversation.Clone()
	clone.Entities.Set("title", entities.String("tampered"))
	clone.PreviousContext["timezone"] = "UTC"
	clone.State = StateExecution

	title, _ := conversation.Entities.Get("title")
	if got, _ := title.AsString(); got != "standup" {
		t.Fatalf("expected original entities untouched, got %q", got)
	}
	if conversation.PreviousContext["timezone"] != "Asia/Seoul" {
		t.Fatalf("expected original context untouched, got %v", conversation.PreviousContext["timezone"])
	}
	if conversation.State != StateParsing {
		t.Fatalf("expected original state untouched, got %q", conversation.State)
	}
}

func TestContextOf(t *testing.T) {
	conversation := New("u1", "c1")
	conversation.Intent = "create_memo"
	conversation.State = StateExecution
	conversation.Entities.Set("content", entities.String("buy milk"))
	conversation.PreviousContext = map[string]any{"timezone": "Asia/Seoul"}

	bundle := ContextOf(conversation)
	if bundle.PreviousIntent != "create_memo" {
		t.Fatalf("expected previous intent carried, got %q", bundle.PreviousIntent)
	}
	if bundle.State != string(StateExecution) {
		t.Fatalf("expected state carried, got %q", bundle.State)
	}
	if bundle.UserContext["timezone"] != "Asia/Seoul" {
		t.Fatalf("expected user context carried")
	}

	// Bundles never alias conversation state.
	bundle.PreviousEntities.Set("content", entities.String("tampered"))
	bundle.UserContext["timezone"] = "UTC"
	content, _ := conversation.Entities.Get("content")
	if got, _ := content.AsString(); got != "buy milk" {
		t.Fatalf("expected conversation untouched by bundle mutation, got %q", got)
	}
	if conversation.PreviousContext["timezone"] != "Asia/Seoul" {
		t.Fatalf("expected conversation context untouched by bundle mutation")
	}
}

func TestDefaultContext(t *testing.T) {
	bundle := DefaultContext()

	if bundle.State != "initial" {
		t.Fatalf("expected default bundle state %q, got %q", "initial", bundle.State)
	}
	if bundle.PreviousIntent != "" || bundle.PreviousEntities.Len() != 0 {
		t.Fatalf("expected an empty default bundle")
	}
	if got := ContextOf(nil).State; got != "initial" {
		t.Fatalf("expected nil conversation to yield the default bundle, got %q", got)
	}
}
