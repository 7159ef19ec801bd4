package completion

import (
	"testing"

	"github.com/merelabs/mere-core/core/conversations"
	"github.com/merelabs/mere-core/core/entities"
	"github.com/merelabs/mere-core/core/understanding"
)

func TestExtract(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected map[string]string
	}{
		{name: "hour", text: "3시에 해줘", expected: map[string]string{"time_hour": "3"}},
		{name: "hour and minute", text: "3시 30분", expected: map[string]string{"time_hour": "3", "time_minute": "30"}},
		{name: "relative date", text: "내일 오후", expected: map[string]string{"date_relative": "내일"}},
		{name: "specific date", text: "5월에", expected: map[string]string{"date_specific": "5월"}},
		{name: "nothing extractable", text: "well, hmm", expected: map[string]string{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			extracted := Extract(testCase.text)
			if extracted.Len() != len(testCase.expected) {
				t.Fatalf("expected %d entities, got %d", len(testCase.expected), extracted.Len())
			}
			for key, expected := range testCase.expected {
				value, ok := extracted.Get(key)
				if !ok {
					t.Fatalf("expected entity %q", key)
				}
				if got, _ := value.AsString(); got != expected {
					t.Fatalf("expected %q = %q, got %q", key, expected, got)
				}
			}
		})
	}
}

func TestRelabel(t *testing.T) {
	if got := Relabel("create_event"); got != "complete_create_event" {
		t.Fatalf("expected completion label, got %q", got)
	}
}

func TestApplyRewritesEntityFreeFollowUps(t *testing.T) {
	conversation := conversations.New("u1", "c1")
	conversation.Intent = "create_event"

	turn := understanding.Result{Text: "내일 3시", Intent: "unknown", Confidence: 0.4}

	applied := Apply(turn, conversation)
	if applied.Intent != "complete_create_event" {
		t.Fatalf("expected completion relabel, got %q", applied.Intent)
	}
	if _, ok := applied.Entities.Get("time_hour"); !ok {
		t.Fatalf("expected hour extracted from raw text")
	}
	if _, ok := applied.Entities.Get("date_relative"); !ok {
		t.Fatalf("expected relative date extracted from raw text")
	}
}

func TestApplyLeavesEntityCarryingTurnsAlone(t *testing.T) {
	conversation := conversations.New("u1", "c1")
	conversation.Intent = "create_event"

	m := entities.NewMap()
	m.Set("title", entities.String("standup"))
	turn := understanding.Result{Text: "내일 3시", Intent: "create_event", Confidence: 0.9, Entities: m}

	applied := Apply(turn, conversation)
	if applied.Intent != "create_event" {
		t.Fatalf("expected turn untouched, got %q", applied.Intent)
	}
}

func TestApplyWithoutPendingIntent(t *testing.T) {
	turn := understanding.Result{Text: "내일 3시", Intent: "unknown", Confidence: 0.4}

	if got := Apply(turn, conversations.New("u1", "c1")); got.Intent != "unknown" {
		t.Fatalf("expected no relabel without a pending intent, got %q", got.Intent)
	}
	if got := Apply(turn, nil); got.Intent != "unknown" {
		t.Fatalf("expected nil conversation to pass the turn through, got %q", got.Intent)
	}
}
