package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// ProfileRecord is one Q&A pair of the profile corpus with its answer
// embedding. Written only by the ingest command; the server reads it back
// by vector similarity.
type ProfileRecord struct {
	Id        int             `gorm:"primaryKey"`
	Question  string          `gorm:"type:text;not null"`
	Answer    string          `gorm:"type:text;not null"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text dimensionality
	Metadata  datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (ProfileRecord) TableName() string {
	return "profile_records"
}
