package understanding

import (
	"context"
	"testing"
)

func TestFromWireCoercesMalformedEntities(t *testing.T) {
	testCases := []struct {
		name        string
		raw         any
		expectedLen int
	}{
		{name: "map payload", raw: map[string]any{"memo_id": "42"}, expectedLen: 1},
		{name: "string payload coerced to empty", raw: "oops", expectedLen: 0},
		{name: "list payload coerced to empty", raw: []any{"oops"}, expectedLen: 0},
		{name: "nil payload", raw: nil, expectedLen: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := FromWire(context.Background(), "raw text",
				WireResult{Intent: "delete_memo", Confidence: 0.9}, testCase.raw)
			if result.Entities.Len() != testCase.expectedLen {
				t.Fatalf("expected %d entities, got %d", testCase.expectedLen, result.Entities.Len())
			}
			if result.Intent != "delete_memo" {
				t.Fatalf("expected intent preserved, got %q", result.Intent)
			}
		})
	}
}

func TestFromWireClampsConfidence(t *testing.T) {
	testCases := []struct {
		name       string
		confidence float64
		expected   float64
	}{
		{name: "above one", confidence: 1.4, expected: 1},
		{name: "below zero", confidence: -0.2, expected: 0},
		{name: "in range", confidence: 0.73, expected: 0.73},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := FromWire(context.Background(), "",
				WireResult{Intent: "create_memo", Confidence: testCase.confidence}, nil)
			if result.Confidence != testCase.expected {
				t.Fatalf("expected confidence %v, got %v", testCase.expected, result.Confidence)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	result := Result{Intent: "create_memo", Confidence: 2.0}.Normalize()

	if result.Confidence != 1 {
		t.Fatalf("expected confidence clamped, got %v", result.Confidence)
	}
	if result.Entities.Len() != 0 {
		t.Fatalf("expected an empty entity map, got %d", result.Entities.Len())
	}
}

func TestResultSchemaDescribesWireShape(t *testing.T) {
	schema := ResultSchema()
	if schema == nil {
		t.Fatalf("expected a schema")
	}

	for _, field := range []string{"intent", "confidence", "entities"} {
		if _, ok := schema.Properties.Get(field); !ok {
			t.Fatalf("expected schema to describe %q", field)
		}
	}
}
