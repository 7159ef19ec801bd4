// Package completion handles the "answering a follow-up question" turn: the
// user was asked for a missing piece (a time, a date) and replied with just
// that piece, so the reply carries no intent of its own.
package completion

import (
	"fmt"
	"regexp"

	"github.com/merelabs/mere-core/core/conversations"
	"github.com/merelabs/mere-core/core/entities"
	"github.com/merelabs/mere-core/core/understanding"
)

var timePatterns = []struct {
	pattern *regexp.Regexp
	entity  string
}{
	{regexp.MustCompile(`(\d+)시`), "time_hour"},
	{regexp.MustCompile(`(\d+)분`), "time_minute"},
	{regexp.MustCompile(`(내일|오늘|모레)`), "date_relative"},
	{regexp.MustCompile(`(\d+월|\d+일)`), "date_specific"},
}

// Extract pulls completion entities (hour, minute, relative/specific date
// tokens) out of raw text with fixed pattern rules. The result may be empty;
// it never fails.
func Extract(text string) entities.Map {
	extracted := entities.NewMap()
	for _, rule := range timePatterns {
		match := rule.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		extracted.Set(rule.entity, entities.String(match[1]))
	}
	return extracted
}

// Relabel names the effective intent of a turn that completes an earlier
// one.
func Relabel(previousIntent string) string {
	return fmt.Sprintf("complete_%s", previousIntent)
}

// Apply rewrites a turn that supplies missing information: when the
// conversation carries a pending intent and the new turn contributes no
// entities of its own, the turn becomes a completion of that intent and its
// entities are extracted from the raw text. Callers run this before handing
// the turn to the registry.
func Apply(turn understanding.Result, conversation *conversations.Conversation) understanding.Result {
	if conversation == nil || conversation.Intent == "" || turn.Entities.Len() > 0 {
		return turn
	}

	turn.Intent = Relabel(conversation.Intent)
	turn.Entities = Extract(turn.Text)
	return turn
}
