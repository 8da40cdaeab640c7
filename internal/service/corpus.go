package service

import (
	"bufio"
	"encoding/json"
	"os"

	"profile-chat-be/internal/dto"
	"profile-chat-be/internal/pkg/logger"
)

// corpusLine matches the training corpus format: one JSON object per line
// with a two-entry messages array, question first, answer second.
type corpusLine struct {
	Messages []struct {
		Content string `json:"content"`
	} `json:"messages"`
}

// ParseCorpus reads a JSONL corpus file into records. Malformed or
// incomplete lines are skipped and logged, matching the tolerant ingestion
// of the source data. Record ids follow line order.
func ParseCorpus(path string, log logger.ILogger) ([]dto.CorpusRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []dto.CorpusRecord

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var parsed corpusLine
		if err := json.Unmarshal(line, &parsed); err != nil {
			log.Warn("corpus", "skipping malformed line", map[string]interface{}{
				"line":  lineNo,
				"error": err.Error(),
			})
			continue
		}
		if len(parsed.Messages) < 2 || parsed.Messages[0].Content == "" || parsed.Messages[1].Content == "" {
			log.Warn("corpus", "skipping incomplete line", map[string]interface{}{
				"line": lineNo,
			})
			continue
		}

		records = append(records, dto.CorpusRecord{
			Id:       len(records) + 1,
			Question: parsed.Messages[0].Content,
			Answer:   parsed.Messages[1].Content,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
