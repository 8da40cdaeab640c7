package rag

import (
	"context"
	"fmt"
	"strings"

	"profile-chat-be/internal/pkg/logger"
	"profile-chat-be/internal/repository/contract"
	"profile-chat-be/pkg/embedding"
)

// Retriever turns a raw query into a context block of relevant Q/A pairs.
// An empty return string means "no relevant context" — both for zero index
// matches and for all matches failing the distance gate.
type Retriever struct {
	embedder    embedding.Provider
	profiles    contract.ProfileRepository
	topK        int
	maxDistance float64
	log         logger.ILogger
}

func NewRetriever(
	embedder embedding.Provider,
	profiles contract.ProfileRepository,
	topK int,
	maxDistance float64,
	log logger.ILogger,
) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{
		embedder:    embedder,
		profiles:    profiles,
		topK:        topK,
		maxDistance: maxDistance,
		log:         log,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, query string) (string, error) {
	normalized := Normalize(query)

	queryVector, err := r.embedder.Embed(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}

	matches, err := r.profiles.SearchNearest(ctx, queryVector, r.topK)
	if err != nil {
		return "", fmt.Errorf("vector search: %w", err)
	}

	if len(matches) == 0 {
		return "", nil
	}

	// The distance gate is a cheap relevance filter, not a reranker: matches
	// keep the index's order, irrelevant ones are dropped.
	contextParts := make([]string, 0, len(matches))
	for _, match := range matches {
		if match.Distance > r.maxDistance {
			r.log.Debug("retriever", "match over distance threshold, skipped", map[string]interface{}{
				"record_id": match.Record.Id,
				"distance":  match.Distance,
			})
			continue
		}
		contextParts = append(contextParts,
			fmt.Sprintf("Q: %s\nA: %s", match.Record.Question, match.Record.Answer))
	}

	return strings.Join(contextParts, "\n\n"), nil
}
