package dialogue

import (
	"github.com/merelabs/mere-core/config"
	"github.com/merelabs/mere-core/core/conversations"
)

type RegistryOption func(*Registry)

// WithConfig replaces the built-in policy configuration. A nil config is a
// no-op.
func WithConfig(cfg *config.Config) RegistryOption {
	return func(r *Registry) {
		if cfg == nil {
			return
		}
		r.cfg = cfg
	}
}

// WithLocale selects the vocabulary locale. Unknown locales are ignored in
// favor of the configured one.
func WithLocale(locale string) RegistryOption {
	return func(r *Registry) { r.localeOverride = locale }
}

// WithConfidenceFloor overrides the parsing-stage confidence floor. Zero
// disables the floor.
func WithConfidenceFloor(floor float64) RegistryOption {
	return func(r *Registry) { r.floorOverride = &floor }
}

// WithConfirmationThreshold overrides the confidence below which
// non-destructive actions are confirmation-gated.
func WithConfirmationThreshold(threshold float64) RegistryOption {
	return func(r *Registry) { r.thresholdOverride = &threshold }
}

// OnStateChanged registers a callback for resting-state transitions.
func OnStateChanged(callback func(conversationID string, from, to conversations.State)) RegistryOption {
	return func(r *Registry) { r.callbacks.onStateChanged = callback }
}

// OnConfirmationRequested registers a callback for turns resting on a
// yes/no prompt; the caller uses it to drive the re-prompt.
func OnConfirmationRequested(callback func(conversationID, intent string)) RegistryOption {
	return func(r *Registry) { r.callbacks.onConfirmationRequested = callback }
}

// OnExecutionReady registers a callback for turns resolved to an executable
// action; the dispatcher hangs off this.
func OnExecutionReady(callback func(conversationID, intent string)) RegistryOption {
	return func(r *Registry) { r.callbacks.onExecutionReady = callback }
}

// OnInterrupted registers a callback for aborted turns.
func OnInterrupted(callback func(conversationID, reason string)) RegistryOption {
	return func(r *Registry) { r.callbacks.onInterrupted = callback }
}

// OnConversationStarted registers a callback for session creation.
func OnConversationStarted(callback func(conversationID, userID string)) RegistryOption {
	return func(r *Registry) { r.callbacks.onConversationStarted = callback }
}

// OnConversationEnded registers a callback for explicit session completion.
func OnConversationEnded(callback func(conversationID string)) RegistryOption {
	return func(r *Registry) { r.callbacks.onConversationEnded = callback }
}
