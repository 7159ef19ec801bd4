// Package dialogue is the turn-management core of the assistant backend.
//
// The registry owns every live conversation and exposes the session
// lifecycle: StartConversation, ProcessTurn, Conversation, EndConversation,
// ActiveConversations, Context. A turn is one (intent, entities, confidence)
// triple from the upstream understanding collaborator; ProcessTurn resolves
// it to exactly one resting state in strict priority order: interruption,
// confirmation-reply mapping, confidence floor, confirmation policy,
// execution.
//
// The registry is the sole writer of conversation state. Everything it
// returns is a deep copy, and turns for one conversation are serialized by a
// per-conversation lock; turns for different conversations interleave
// freely.
package dialogue
