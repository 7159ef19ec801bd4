package dialogue

import (
	"github.com/merelabs/mere-core/core/conversations"
	"github.com/merelabs/mere-core/core/events"
)

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

type registryCallbacks struct {
	onStateChanged          func(conversationID string, from, to conversations.State)
	onConfirmationRequested func(conversationID, intent string)
	onExecutionReady        func(conversationID, intent string)
	onInterrupted           func(conversationID, reason string)
	onConversationStarted   func(conversationID, userID string)
	onConversationEnded     func(conversationID string)
}

func newCallbackEventEmitter(callbacks registryCallbacks) eventEmitter {
	return func(event events.Event) {
		switch typedEvent := event.(type) {
		case events.ConversationStarted:
			if callbacks.onConversationStarted != nil {
				callbacks.onConversationStarted(typedEvent.ConversationID, typedEvent.UserID)
			}
		case events.ConversationEnded:
			if callbacks.onConversationEnded != nil {
				callbacks.onConversationEnded(typedEvent.ConversationID)
			}
		case events.StateChanged:
			if callbacks.onStateChanged != nil {
				callbacks.onStateChanged(typedEvent.ConversationID,
					conversations.State(typedEvent.From), conversations.State(typedEvent.To))
			}
		case events.ConfirmationRequested:
			if callbacks.onConfirmationRequested != nil {
				callbacks.onConfirmationRequested(typedEvent.ConversationID, typedEvent.Intent)
			}
		case events.ExecutionReady:
			if callbacks.onExecutionReady != nil {
				callbacks.onExecutionReady(typedEvent.ConversationID, typedEvent.Intent)
			}
		case events.ConversationInterrupted:
			if callbacks.onInterrupted != nil {
				callbacks.onInterrupted(typedEvent.ConversationID, typedEvent.Reason)
			}
		}
	}
}
