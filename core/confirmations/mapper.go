package confirmations

import "strings"

// Canonical intents a confirmation reply maps to.
const (
	IntentConfirm = "confirm"
	IntentReject  = "reject"
)

// confidenceBoost reflects the reduced ambiguity of answering a direct
// yes/no prompt.
const confidenceBoost = 0.1

// Mapper normalizes replies given during a confirmation prompt into the
// canonical confirm/reject intents.
type Mapper struct {
	replies map[string]string
}

// NewMapper builds a mapper from reply tokens to canonical intents. The
// vocabulary is locale-specific and comes from configuration; values must be
// IntentConfirm or IntentReject.
func NewMapper(replies map[string]string) Mapper {
	normalized := make(map[string]string, len(replies))
	for token, canonical := range replies {
		normalized[strings.ToLower(token)] = canonical
	}
	return Mapper{replies: normalized}
}

// Map rewrites a recognized reply token to its canonical intent and boosts
// confidence by a fixed increment, capped at 1.0. Unrecognized tokens are
// returned untouched with ok=false; the caller treats those as a re-prompt,
// never as silent consent.
func (m Mapper) Map(intent string, confidence float64) (string, float64, bool) {
	canonical, ok := m.replies[strings.ToLower(intent)]
	if !ok {
		return intent, confidence, false
	}
	return canonical, min(confidence+confidenceBoost, 1.0), true
}
