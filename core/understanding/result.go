// Package understanding pins down the boundary with the upstream
// language-understanding collaborator. The model call itself lives outside
// this module; only the shape of its output matters here.
package understanding

import (
	"context"

	"github.com/merelabs/mere-core/core/entities"
)

// Result is one turn's output from the understanding collaborator.
type Result struct {
	// Text is the raw utterance the result was derived from.
	Text string

	Intent     string
	Confidence float64
	Entities   entities.Map
}

// WireResult is the loose JSON shape collaborator adapters decode into
// before validation. Confidence bounds are part of the contract.
type WireResult struct {
	Intent     string         `json:"intent" jsonschema:"title=Intent,description=Resolved intent label"`
	Confidence float64        `json:"confidence" jsonschema:"minimum=0,maximum=1"`
	Entities   map[string]any `json:"entities"`
}

// FromWire validates a decoded payload into a Result. A malformed entity
// payload is coerced to an empty map and logged, never surfaced as an
// error; confidence is clamped into [0,1].
func FromWire(ctx context.Context, text string, wire WireResult, raw any) Result {
	result := Result{
		Text:       text,
		Intent:     wire.Intent,
		Confidence: clamp(wire.Confidence),
	}

	payload := raw
	if payload == nil {
		payload = wire.Entities
	}
	coerced, ok := entities.CoerceAny(payload)
	if !ok {
		logger.WarnContext(ctx, "entity payload is not a map, coercing to empty",
			"intent", wire.Intent)
	}
	result.Entities = coerced
	return result
}

// Normalize repairs a hand-built Result: clamps confidence and replaces a
// zero entity map with an empty one.
func (r Result) Normalize() Result {
	r.Confidence = clamp(r.Confidence)
	if r.Entities.Len() == 0 {
		r.Entities = entities.NewMap()
	}
	return r
}

func clamp(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
