package contract

import (
	"context"

	"profile-chat-be/internal/model"
)

// ScoredProfileRecord pairs a record with its raw vector distance to the
// query (pgvector cosine distance, lower is closer).
type ScoredProfileRecord struct {
	Record   *model.ProfileRecord
	Distance float64
}

type ProfileRepository interface {
	// SearchNearest returns up to limit records ranked by ascending distance
	// to the query vector, distances included.
	SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*ScoredProfileRecord, error)

	Count(ctx context.Context) (int64, error)
	Sample(ctx context.Context) (*model.ProfileRecord, error)

	// ReplaceAll drops existing records and inserts the given set. Used by
	// the ingest command only.
	ReplaceAll(ctx context.Context, records []*model.ProfileRecord) error
}
