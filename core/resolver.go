package dialogue

import (
	"github.com/merelabs/mere-core/core/confirmations"
	"github.com/merelabs/mere-core/core/conversations"
	"github.com/merelabs/mere-core/core/interruptions"
)

// interruptionReasonUserCancel is recorded when the user aborts the turn.
const interruptionReasonUserCancel = "user_cancel"

// turnResolver computes the single resting state of one turn. Rules are
// evaluated in strict priority order; an interruption wins over everything,
// from any state that still accepts turns.
type turnResolver struct {
	detector *interruptions.Detector
	mapper   confirmations.Mapper
	policy   confirmations.Policy

	// confidenceFloor holds parsing-stage turns below it for a re-prompt.
	// Zero disables the floor.
	confidenceFloor float64
}

// resolution is the outcome of one resolved turn. Intent and confidence may
// differ from the inputs when a confirmation reply was normalized.
type resolution struct {
	state      conversations.State
	intent     string
	confidence float64

	// reason is set only when state is StateInterrupted.
	reason string
}

func (r turnResolver) resolve(prior conversations.State, intent string, confidence float64) resolution {
	if r.detector.IsInterruption(intent) {
		return resolution{
			state:      conversations.StateInterrupted,
			intent:     intent,
			confidence: confidence,
			reason:     interruptionReasonUserCancel,
		}
	}

	repliedToPrompt := false
	if prior == conversations.StateConfirmation {
		mappedIntent, mappedConfidence, ok := r.mapper.Map(intent, confidence)
		if !ok {
			// Unrecognized reply to a direct prompt: hold for a re-prompt
			// rather than guessing consent.
			return resolution{
				state:      conversations.StateConfirmation,
				intent:     intent,
				confidence: confidence,
			}
		}
		intent, confidence = mappedIntent, mappedConfidence
		repliedToPrompt = true
	}

	if !repliedToPrompt && confidence < r.confidenceFloor {
		return resolution{
			state:      conversations.StateParsing,
			intent:     intent,
			confidence: confidence,
		}
	}

	if r.policy.RequiresConfirmation(intent, confidence) {
		return resolution{
			state:      conversations.StateConfirmation,
			intent:     intent,
			confidence: confidence,
		}
	}

	return resolution{
		state:      conversations.StateExecution,
		intent:     intent,
		confidence: confidence,
	}
}
