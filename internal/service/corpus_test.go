package service

import (
	"os"
	"path/filepath"
	"testing"

	"profile-chat-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCorpus(t *testing.T) {
	content := `{"messages":[{"role":"user","content":"What does Cory do?"},{"role":"assistant","content":"He builds web applications."}]}
{"messages":[{"role":"user","content":"Where does Cory work?"},{"role":"assistant","content":"At a product company."}]}
`
	records, err := ParseCorpus(writeCorpus(t, content), logger.NewNopLogger())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].Id)
	assert.Equal(t, "What does Cory do?", records[0].Question)
	assert.Equal(t, "He builds web applications.", records[0].Answer)
	assert.Equal(t, 2, records[1].Id)
	assert.Equal(t, "Where does Cory work?", records[1].Question)
}

func TestParseCorpusSkipsBadLines(t *testing.T) {
	content := `{"messages":[{"content":"q1"},{"content":"a1"}]}
not json at all

{"messages":[{"content":"only one entry"}]}
{"messages":[{"content":""},{"content":"blank question"}]}
{"messages":[{"content":"q2"},{"content":"a2"}]}
`
	records, err := ParseCorpus(writeCorpus(t, content), logger.NewNopLogger())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Ids follow the order of accepted records, not file line numbers.
	assert.Equal(t, 1, records[0].Id)
	assert.Equal(t, "q1", records[0].Question)
	assert.Equal(t, 2, records[1].Id)
	assert.Equal(t, "q2", records[1].Question)
}

func TestParseCorpusMissingFile(t *testing.T) {
	_, err := ParseCorpus(filepath.Join(t.TempDir(), "missing.jsonl"), logger.NewNopLogger())
	require.Error(t, err)
}
