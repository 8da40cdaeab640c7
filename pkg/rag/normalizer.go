package rag

import "strings"

var apostropheReplacer = strings.NewReplacer("'", "", "’", "")

// Normalize canonicalizes a query for embedding and retrieval: apostrophe
// variants are removed and whitespace runs collapse to single spaces, so
// "What's  Cory's role?" and "Whats Corys role?" hit the same vectors.
// Total and idempotent.
func Normalize(query string) string {
	normalized := apostropheReplacer.Replace(query)
	return strings.Join(strings.Fields(normalized), " ")
}
