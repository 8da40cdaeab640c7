package service

import (
	"context"
	"errors"
	"testing"

	"profile-chat-be/internal/dto"
	"profile-chat-be/internal/model"
	"profile-chat-be/internal/pkg/logger"
	"profile-chat-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingRepository struct {
	fakeRepository
	replaced []*model.ProfileRecord
}

func (c *capturingRepository) ReplaceAll(_ context.Context, records []*model.ProfileRecord) error {
	c.replaced = records
	return nil
}

type flakyEmbedder struct {
	failOn string
}

func (f *flakyEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if text == f.failOn {
		return nil, errors.New("embedding failed")
	}
	return []float32{0.5, 0.5}, nil
}

func newIngestUnderTest(t *testing.T, embedder *flakyEmbedder, repo contract.ProfileRepository) IIngestService {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })
	return NewIngestService(pubSub, "EMBED_PROFILE_RECORD", embedder, repo, logger.NewNopLogger())
}

func TestIngestRun(t *testing.T) {
	repo := &capturingRepository{}
	svc := newIngestUnderTest(t, &flakyEmbedder{}, repo)

	records := []dto.CorpusRecord{
		{Id: 1, Question: "q1", Answer: "a1"},
		{Id: 2, Question: "q2", Answer: "a2"},
		{Id: 3, Question: "q3", Answer: "a3"},
	}

	summary, err := svc.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Stored)
	assert.Zero(t, summary.Failed)

	require.Len(t, repo.replaced, 3)
	// Stored rows come back in corpus order regardless of embedding order.
	for i, row := range repo.replaced {
		assert.Equal(t, i+1, row.Id)
		assert.NotEmpty(t, row.Embedding.Slice())
	}
	assert.Equal(t, "q2", repo.replaced[1].Question)
	assert.Equal(t, "a2", repo.replaced[1].Answer)
	assert.JSONEq(t, `{"question":"q2","id":2}`, string(repo.replaced[1].Metadata))
}

func TestIngestRunCountsFailures(t *testing.T) {
	repo := &capturingRepository{}
	svc := newIngestUnderTest(t, &flakyEmbedder{failOn: "a2"}, repo)

	records := []dto.CorpusRecord{
		{Id: 1, Question: "q1", Answer: "a1"},
		{Id: 2, Question: "q2", Answer: "a2"},
		{Id: 3, Question: "q3", Answer: "a3"},
	}

	summary, err := svc.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Stored)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, repo.replaced, 2)
	assert.Equal(t, 1, repo.replaced[0].Id)
	assert.Equal(t, 3, repo.replaced[1].Id)
}

func TestIngestRunEmptyCorpus(t *testing.T) {
	svc := newIngestUnderTest(t, &flakyEmbedder{}, &capturingRepository{})

	_, err := svc.Run(context.Background(), nil)
	require.Error(t, err)
}
