package conversations

import "github.com/merelabs/mere-core/core/entities"

// Context is the read-only bundle handed to the upstream understanding
// collaborator before a turn is processed. It never aliases registry-owned
// state.
type Context struct {
	// Intent resolved on the previous turn; empty when no turn has landed.
	PreviousIntent string

	// Entities accumulated so far. Ordering: insertion order.
	PreviousEntities entities.Map

	// State the conversation currently rests in; "initial" when the
	// conversation is unknown.
	State string

	// UserContext is the longer-lived context carried on the conversation.
	UserContext map[string]any
}

// DefaultContext is the bundle for a conversation that does not exist yet.
func DefaultContext() Context {
	return Context{
		PreviousEntities: entities.NewMap(),
		State:            "initial",
		UserContext:      map[string]any{},
	}
}

// ContextOf assembles the bundle from a conversation snapshot.
func ContextOf(conversation *Conversation) Context {
	if conversation == nil {
		return DefaultContext()
	}

	userContext := make(map[string]any, len(conversation.PreviousContext))
	for key, value := range conversation.PreviousContext {
		userContext[key] = value
	}

	return Context{
		PreviousIntent:   conversation.Intent,
		PreviousEntities: conversation.Entities.Clone(),
		State:            string(conversation.State),
		UserContext:      userContext,
	}
}
