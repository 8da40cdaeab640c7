package implementation

import (
	"context"
	"errors"

	"profile-chat-be/internal/model"
	"profile-chat-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredProfileRecord, error) {
	if limit <= 0 {
		limit = 5
	}

	// pgvector cosine distance: embedding <=> query, 0 = identical.
	// Distance is selected alongside the row so the retriever can apply its
	// relevance gate per match.
	type result struct {
		model.ProfileRecord
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("profile_records").
		Select("profile_records.*, embedding <=> ? AS distance", queryVector).
		Order("distance ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredProfileRecord, len(results))
	for i := range results {
		rec := results[i].ProfileRecord
		scored[i] = &contract.ScoredProfileRecord{
			Record:   &rec,
			Distance: results[i].Distance,
		}
	}
	return scored, nil
}

func (r *ProfileRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProfileRecord{}).Count(&count).Error
	return count, err
}

func (r *ProfileRepositoryImpl) Sample(ctx context.Context) (*model.ProfileRecord, error) {
	var m model.ProfileRecord
	err := r.db.WithContext(ctx).Order("id ASC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *ProfileRepositoryImpl) ReplaceAll(ctx context.Context, records []*model.ProfileRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM profile_records").Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, 100).Error
	})
}
