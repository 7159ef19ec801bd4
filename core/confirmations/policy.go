// Package confirmations holds the confirmation gate: the policy deciding
// when an action needs an explicit go-ahead, and the mapper normalizing the
// reply the user gives to that prompt.
package confirmations

// Policy gates destructive actions unconditionally and everything else by
// confidence. Irreversible actions are always worth a question; reversible
// ones only when the understanding collaborator was unsure.
type Policy struct {
	destructive map[string]struct{}
	threshold   float64
}

// NewPolicy builds a policy over the destructive-intent set and the
// confidence threshold below which non-destructive actions are gated.
func NewPolicy(destructiveIntents []string, threshold float64) Policy {
	destructive := make(map[string]struct{}, len(destructiveIntents))
	for _, intent := range destructiveIntents {
		destructive[intent] = struct{}{}
	}
	return Policy{destructive: destructive, threshold: threshold}
}

// RequiresConfirmation reports whether the action must be confirmed before
// execution.
func (p Policy) RequiresConfirmation(intent string, confidence float64) bool {
	if _, ok := p.destructive[intent]; ok {
		return true
	}
	return confidence < p.threshold
}
