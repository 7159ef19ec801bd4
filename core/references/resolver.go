// Package references substitutes anaphoric markers ("that", "그것", ...)
// with entity values captured on earlier turns. The output is a hint for the
// upstream understanding collaborator, not a grammatical transform.
package references

import (
	"strings"

	"github.com/merelabs/mere-core/core/conversations"
	"github.com/merelabs/mere-core/core/entities"
)

// Resolver scans text for a fixed set of anaphora markers.
type Resolver struct {
	markers []string
}

// NewResolver builds a resolver over the locale's marker tokens.
func NewResolver(markers []string) *Resolver {
	return &Resolver{markers: markers}
}

// Resolve replaces the first occurrence of each marker found in text with
// the first string-typed entity on the conversation, in entity insertion
// order. Total function: with no usable entity the text comes back
// untouched.
func (r *Resolver) Resolve(text string, conversation *conversations.Conversation) string {
	if conversation == nil || conversation.Entities.Len() == 0 {
		return text
	}

	replacement, ok := firstString(conversation.Entities)
	if !ok {
		return text
	}

	resolved := text
	for _, marker := range r.markers {
		if strings.Contains(resolved, marker) {
			resolved = strings.Replace(resolved, marker, replacement, 1)
		}
	}
	return resolved
}

func firstString(m entities.Map) (string, bool) {
	var (
		value string
		found bool
	)
	m.Values(func(_ string, v entities.Value) bool {
		if s, ok := v.AsString(); ok {
			value, found = s, true
			return false
		}
		return true
	})
	return value, found
}
