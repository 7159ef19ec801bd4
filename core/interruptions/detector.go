// Package interruptions decides whether an intent label is a user
// interruption. An interruption pre-empts every other turn rule, from any
// state that still accepts turns.
package interruptions

import "strings"

// Detector matches intent labels against a fixed cancel vocabulary. It is
// stateless; comparison is case-insensitive.
type Detector struct {
	vocabulary map[string]struct{}
}

// NewDetector builds a detector over the given cancel tokens. The token set
// is locale-specific and comes from configuration.
func NewDetector(tokens []string) *Detector {
	vocabulary := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		vocabulary[strings.ToLower(token)] = struct{}{}
	}
	return &Detector{vocabulary: vocabulary}
}

// IsInterruption reports whether intent is a cancel/stop/abort signal.
func (d *Detector) IsInterruption(intent string) bool {
	if intent == "" {
		return false
	}
	_, ok := d.vocabulary[strings.ToLower(intent)]
	return ok
}
