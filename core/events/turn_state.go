package events

// KindStateChanged identifies a conversation moving to a new resting state.
const KindStateChanged Kind = "turn_state.changed"

// StateChanged marks a transition between resting states.
type StateChanged struct {
	Base
	ConversationID string
	From           string
	To             string
}

// NewStateChanged creates a state changed event.
func NewStateChanged(conversationID, from, to string) StateChanged {
	return StateChanged{
		Base:           NewBase(KindStateChanged),
		ConversationID: conversationID,
		From:           from,
		To:             to,
	}
}

// KindConfirmationRequested identifies a turn resting on a yes/no prompt.
const KindConfirmationRequested Kind = "turn_state.confirmation_requested"

// ConfirmationRequested marks a turn awaiting explicit confirmation.
type ConfirmationRequested struct {
	Base
	ConversationID string
	Intent         string
}

// NewConfirmationRequested creates a confirmation requested event.
func NewConfirmationRequested(conversationID, intent string) ConfirmationRequested {
	return ConfirmationRequested{
		Base:           NewBase(KindConfirmationRequested),
		ConversationID: conversationID,
		Intent:         intent,
	}
}

// KindExecutionReady identifies a turn resolved to an executable action.
const KindExecutionReady Kind = "turn_state.execution_ready"

// ExecutionReady marks a turn the dispatcher should act on.
type ExecutionReady struct {
	Base
	ConversationID string
	Intent         string
}

// NewExecutionReady creates an execution ready event.
func NewExecutionReady(conversationID, intent string) ExecutionReady {
	return ExecutionReady{
		Base:           NewBase(KindExecutionReady),
		ConversationID: conversationID,
		Intent:         intent,
	}
}

// KindConversationInterrupted identifies an aborted turn.
const KindConversationInterrupted Kind = "turn_state.interrupted"

// ConversationInterrupted marks a user abort or a contained resolution
// failure.
type ConversationInterrupted struct {
	Base
	ConversationID string
	Reason         string
}

// NewConversationInterrupted creates a conversation interrupted event.
func NewConversationInterrupted(conversationID, reason string) ConversationInterrupted {
	return ConversationInterrupted{
		Base:           NewBase(KindConversationInterrupted),
		ConversationID: conversationID,
		Reason:         reason,
	}
}
