package conversations

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/merelabs/mere-core/core/entities"
)

// State labels where a conversation currently rests in the turn flow.
type State string

const (
	StateParsing      State = "parsing"
	StateValidation   State = "validation"
	StateConfirmation State = "confirmation"
	StateExecution    State = "execution"
	StateResponse     State = "response"
	StateInterrupted  State = "interrupted"
	StateCompleted    State = "completed"
)

// IsValid reports whether s is one of the seven known states.
func (s State) IsValid() bool {
	switch s {
	case StateParsing, StateValidation, StateConfirmation, StateExecution,
		StateResponse, StateInterrupted, StateCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether the conversation accepts no further turns.
func (s State) IsTerminal() bool { return s == StateCompleted }

// Conversation is the accumulated state of one dialogue session. The
// registry is the sole owner; everything handed out of the registry is a
// deep copy.
type Conversation struct {
	UserID string `json:"user_id"`
	ID     string `json:"conversation_id"`

	State      State        `json:"current_state"`
	Intent     string       `json:"intent,omitempty"`
	Entities   entities.Map `json:"entities"`
	Confidence float64      `json:"confidence"`

	// PreviousContext carries longer-lived user context, distinct from the
	// per-session entity accumulation.
	PreviousContext map[string]any `json:"previous_context,omitempty"`

	// InterruptionReason is set only while State is StateInterrupted.
	InterruptionReason string `json:"interruption_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a fresh conversation in StateParsing with no entities.
func New(userID, conversationID string) *Conversation {
	now := time.Now()
	return &Conversation{
		UserID:    userID,
		ID:        conversationID,
		State:     StateParsing,
		Entities:  entities.NewMap(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps UpdatedAt; every mutation goes through it.
func (c *Conversation) Touch() {
	c.UpdatedAt = time.Now()
}

// Clone returns a deep copy safe to hand outside the registry. The entity
// map clones itself; copier covers the rest, PreviousContext included.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}

	out := &Conversation{}
	if err := copier.CopyWithOption(out, c, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on type mismatches that cannot occur between
		// identical struct types; fall back to a shallow copy regardless.
		shallow := *c
		out = &shallow
	}
	out.Entities = c.Entities.Clone()
	return out
}
