package events

// KindConversationStarted identifies session creation.
const KindConversationStarted Kind = "conversation.started"

// ConversationStarted marks the creation of a session.
type ConversationStarted struct {
	Base
	ConversationID string
	UserID         string
}

// NewConversationStarted creates a conversation started event.
func NewConversationStarted(conversationID, userID string) ConversationStarted {
	return ConversationStarted{
		Base:           NewBase(KindConversationStarted),
		ConversationID: conversationID,
		UserID:         userID,
	}
}

// KindConversationEnded identifies explicit session completion.
const KindConversationEnded Kind = "conversation.ended"

// ConversationEnded marks explicit completion of a session.
type ConversationEnded struct {
	Base
	ConversationID string
}

// NewConversationEnded creates a conversation ended event.
func NewConversationEnded(conversationID string) ConversationEnded {
	return ConversationEnded{
		Base:           NewBase(KindConversationEnded),
		ConversationID: conversationID,
	}
}
