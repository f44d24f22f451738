// Package synthesizers turns declarations into natural-language comments.
//
// Every heuristic is an ordered table of rules evaluated first-match-wins.
package synthesizers

import "strings"

// rule pairs a predicate with the value produced when it matches.
type rule[In, Out any] struct {
	match  func(In) bool
	result Out
}

// firstMatch returns the result of the first rule whose predicate holds, or
// fallback when none does.
func firstMatch[In, Out any](rules []rule[In, Out], in In, fallback Out) Out {
	for _, r := range rules {
		if r.match(in) {
			return r.result
		}
	}

	return fallback
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
