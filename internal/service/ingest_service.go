package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"profile-chat-be/internal/dto"
	"profile-chat-be/internal/model"
	"profile-chat-be/internal/pkg/logger"
	"profile-chat-be/internal/repository/contract"
	"profile-chat-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// IIngestService rebuilds the profile index from a parsed corpus. Records are
// pushed through a pub/sub topic so embedding runs decoupled from file
// reading; the run returns once every record is processed and the table is
// swapped.
type IIngestService interface {
	Run(ctx context.Context, records []dto.CorpusRecord) (*dto.IngestSummary, error)
}

type ingestService struct {
	pubSub   *gochannel.GoChannel
	topic    string
	embedder embedding.Provider
	profiles contract.ProfileRepository
	log      logger.ILogger
}

func NewIngestService(
	pubSub *gochannel.GoChannel,
	topic string,
	embedder embedding.Provider,
	profiles contract.ProfileRepository,
	log logger.ILogger,
) IIngestService {
	return &ingestService{
		pubSub:   pubSub,
		topic:    topic,
		embedder: embedder,
		profiles: profiles,
		log:      log,
	}
}

func (s *ingestService) Run(ctx context.Context, records []dto.CorpusRecord) (*dto.IngestSummary, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no corpus records to ingest")
	}

	messages, err := s.pubSub.Subscribe(ctx, s.topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe ingest topic: %w", err)
	}

	var (
		mu     sync.Mutex
		stored []*model.ProfileRecord
		failed int
		wg     sync.WaitGroup
	)

	wg.Add(len(records))
	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg, &mu, &stored, &failed)
			wg.Done()
		}
	}()

	for _, record := range records {
		payload, err := json.Marshal(dto.EmbedProfileRecordMessage{Record: record})
		if err != nil {
			return nil, fmt.Errorf("marshal record %d: %w", record.Id, err)
		}
		if err := s.pubSub.Publish(s.topic, message.NewMessage(uuid.NewString(), payload)); err != nil {
			return nil, fmt.Errorf("publish record %d: %w", record.Id, err)
		}
	}

	wg.Wait()

	sort.Slice(stored, func(i, j int) bool { return stored[i].Id < stored[j].Id })
	if err := s.profiles.ReplaceAll(ctx, stored); err != nil {
		return nil, fmt.Errorf("store records: %w", err)
	}

	return &dto.IngestSummary{Stored: len(stored), Failed: failed}, nil
}

func (s *ingestService) processMessage(
	ctx context.Context,
	msg *message.Message,
	mu *sync.Mutex,
	stored *[]*model.ProfileRecord,
	failed *int,
) {
	defer msg.Ack()

	var payload dto.EmbedProfileRecordMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("ingest", "unmarshal record message failed", map[string]interface{}{
			"error": err.Error(),
		})
		mu.Lock()
		*failed++
		mu.Unlock()
		return
	}

	record := payload.Record

	// Embed the answer: that's the text retrieval matches against. The
	// question rides along in the row and its metadata.
	vector, err := s.embedder.Embed(ctx, record.Answer)
	if err != nil {
		s.log.Error("ingest", "embedding failed", map[string]interface{}{
			"record_id": record.Id,
			"error":     err.Error(),
		})
		mu.Lock()
		*failed++
		mu.Unlock()
		return
	}

	metadata, _ := json.Marshal(map[string]interface{}{
		"question": record.Question,
		"id":       record.Id,
	})

	mu.Lock()
	*stored = append(*stored, &model.ProfileRecord{
		Id:        record.Id,
		Question:  record.Question,
		Answer:    record.Answer,
		Embedding: pgvector.NewVector(vector),
		Metadata:  datatypes.JSON(metadata),
	})
	mu.Unlock()
}
