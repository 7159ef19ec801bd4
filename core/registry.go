package dialogue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/merelabs/mere-core/config"
	"github.com/merelabs/mere-core/core/confirmations"
	"github.com/merelabs/mere-core/core/conversations"
	"github.com/merelabs/mere-core/core/events"
	"github.com/merelabs/mere-core/core/interruptions"
	"github.com/merelabs/mere-core/core/references"
	"github.com/merelabs/mere-core/core/understanding"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrConversationNotFound = errors.New("conversation not found")

// session pairs a conversation with the lock that serializes its turns.
// Turns for one conversation apply in arrival order; turns for different
// conversations interleave freely.
type session struct {
	mu           sync.Mutex
	conversation *conversations.Conversation
}

// Registry owns the process-wide map of live conversations and is the only
// writer of conversation state. Construct one per host process and inject
// it; there is no package-level instance.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session

	cfg            *config.Config
	localeOverride string
	floorOverride  *float64

	thresholdOverride *float64

	resolver   turnResolver
	references *references.Resolver

	callbacks registryCallbacks
	emit      eventEmitter
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		sessions: map[string]*session{},
		cfg:      config.Default(),
		emit:     noopEventEmitter,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.localeOverride != "" {
		if _, ok := r.cfg.Locales[r.localeOverride]; ok {
			r.cfg.Locale = r.localeOverride
		} else {
			logger.Warn("unknown locale requested, keeping configured locale",
				"requested", r.localeOverride, "configured", r.cfg.Locale)
		}
	}

	floor := r.cfg.Thresholds.ConfidenceFloor
	if r.floorOverride != nil {
		floor = *r.floorOverride
	}
	threshold := r.cfg.Thresholds.Confirmation
	if r.thresholdOverride != nil {
		threshold = *r.thresholdOverride
	}

	vocabulary := r.cfg.Vocabulary()
	r.resolver = turnResolver{
		detector:        interruptions.NewDetector(vocabulary.Interruptions),
		mapper:          confirmations.NewMapper(vocabulary.ConfirmationReplies),
		policy:          confirmations.NewPolicy(r.cfg.DestructiveIntents, threshold),
		confidenceFloor: floor,
	}
	r.references = references.NewResolver(vocabulary.ReferenceMarkers)
	r.emit = newCallbackEventEmitter(r.callbacks)

	return r
}

// StartConversation creates a fresh conversation for userID and returns its
// id. It always succeeds.
func (r *Registry) StartConversation(ctx context.Context, userID string) string {
	ctx, span := tracer.Start(ctx, "start conversation")
	defer span.End()

	conversationID := uuid.NewString()
	span.SetAttributes(attribute.String("conversation.id", conversationID))

	r.mu.Lock()
	r.sessions[conversationID] = &session{conversation: conversations.New(userID, conversationID)}
	r.mu.Unlock()

	r.emit(events.NewConversationStarted(conversationID, userID))
	logger.InfoContext(ctx, "conversation started",
		"conversation_id", conversationID, "user_id", userID)

	return conversationID
}

// ProcessTurn applies one understanding result to the conversation: merges
// entities (grow-only, colliding keys overwritten), records intent and
// confidence, resolves the resting state and returns a snapshot of the
// updated conversation.
//
// A panic during resolution is contained here: the conversation is forced
// into StateInterrupted with a processing_error reason and the snapshot is
// returned without error, so the registry never lands in an undefined
// state.
func (r *Registry) ProcessTurn(ctx context.Context, conversationID string, turn understanding.Result) (snapshot *conversations.Conversation, err error) {
	ctx, span := tracer.Start(ctx, "process turn")
	defer span.End()
	span.SetAttributes(attribute.String("conversation.id", conversationID))

	sess, ok := r.session(conversationID)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrConversationNotFound, conversationID)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	conversation := sess.conversation

	defer func() {
		if recovered := recover(); recovered != nil {
			recoveredErr := fmt.Errorf("turn resolution panicked: %v", recovered)
			span.RecordError(recoveredErr)
			span.SetStatus(codes.Error, recoveredErr.Error())
			logger.ErrorContext(ctx, "turn resolution failed, conversation interrupted",
				"conversation_id", conversationID, "error", recoveredErr)

			conversation.State = conversations.StateInterrupted
			conversation.InterruptionReason = fmt.Sprintf("processing_error: %v", recovered)
			conversation.Touch()
			r.emit(events.NewConversationInterrupted(conversationID, conversation.InterruptionReason))
			snapshot, err = conversation.Clone(), nil
		}
	}()

	turn = turn.Normalize()
	prior := conversation.State

	conversation.Intent = turn.Intent
	conversation.Confidence = turn.Confidence
	conversation.Entities.Merge(turn.Entities)

	if prior.IsTerminal() {
		// Ended conversations still take bookkeeping but never transition.
		conversation.Touch()
		return conversation.Clone(), nil
	}

	resolved := r.resolver.resolve(prior, turn.Intent, turn.Confidence)
	conversation.Intent = resolved.intent
	conversation.Confidence = resolved.confidence
	conversation.State = resolved.state
	conversation.InterruptionReason = resolved.reason
	conversation.Touch()

	span.SetAttributes(
		attribute.String("turn.intent", resolved.intent),
		attribute.String("turn.state", string(resolved.state)),
	)
	logger.InfoContext(ctx, "turn resolved",
		"conversation_id", conversationID,
		"intent", resolved.intent,
		"state", string(resolved.state))

	if resolved.state != prior {
		r.emit(events.NewStateChanged(conversationID, string(prior), string(resolved.state)))
	}
	switch resolved.state {
	case conversations.StateConfirmation:
		r.emit(events.NewConfirmationRequested(conversationID, resolved.intent))
	case conversations.StateExecution:
		r.emit(events.NewExecutionReady(conversationID, resolved.intent))
	case conversations.StateInterrupted:
		r.emit(events.NewConversationInterrupted(conversationID, resolved.reason))
	}

	return conversation.Clone(), nil
}

// Conversation returns a snapshot of the conversation, or false when the id
// is unknown.
func (r *Registry) Conversation(conversationID string) (*conversations.Conversation, bool) {
	sess, ok := r.session(conversationID)
	if !ok {
		return nil, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.conversation.Clone(), true
}

// EndConversation marks the conversation completed. Idempotent: ending an
// already-completed conversation changes nothing. The conversation stays in
// the registry for inspection until the process exits.
func (r *Registry) EndConversation(ctx context.Context, conversationID string) error {
	sess, ok := r.session(conversationID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrConversationNotFound, conversationID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.conversation.State.IsTerminal() {
		return nil
	}

	sess.conversation.State = conversations.StateCompleted
	sess.conversation.Touch()
	r.emit(events.NewConversationEnded(conversationID))
	logger.InfoContext(ctx, "conversation ended", "conversation_id", conversationID)
	return nil
}

// ActiveConversations returns snapshots of every conversation that has not
// been completed, keyed by conversation id.
func (r *Registry) ActiveConversations() map[string]*conversations.Conversation {
	r.mu.RLock()
	sessions := make([]*session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		sessions = append(sessions, sess)
	}
	r.mu.RUnlock()

	active := map[string]*conversations.Conversation{}
	for _, sess := range sessions {
		sess.mu.Lock()
		if !sess.conversation.State.IsTerminal() {
			active[sess.conversation.ID] = sess.conversation.Clone()
		}
		sess.mu.Unlock()
	}
	return active
}

// Context assembles the read-only bundle the caller hands to the upstream
// understanding collaborator before processing a turn. Unknown ids yield
// the default bundle.
func (r *Registry) Context(conversationID string) conversations.Context {
	sess, ok := r.session(conversationID)
	if !ok {
		return conversations.DefaultContext()
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return conversations.ContextOf(sess.conversation)
}

// ResolveReferences substitutes anaphoric markers in text using entities
// captured on the conversation's earlier turns. Best-effort: unknown ids
// and conversations without usable entities return text untouched.
func (r *Registry) ResolveReferences(conversationID, text string) string {
	sess, ok := r.session(conversationID)
	if !ok {
		return text
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return r.references.Resolve(text, sess.conversation)
}

func (r *Registry) session(conversationID string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[conversationID]
	return sess, ok
}
