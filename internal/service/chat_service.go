package service

import (
	"context"

	"profile-chat-be/internal/constant"
	"profile-chat-be/internal/dto"
	"profile-chat-be/internal/pkg/logger"
	"profile-chat-be/pkg/llm"
	"profile-chat-be/pkg/rag"
	"profile-chat-be/pkg/rag/cache"
	"profile-chat-be/pkg/rag/prompt"
)

// IChatService sequences a chat request: cache lookup, retrieval, prompt
// assembly, completion, cache write. The streaming variant skips the cache
// on both ends and always yields a fragment sequence, degraded paths
// included.
type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (string, error)
	ChatStream(ctx context.Context, req *dto.ChatRequest) (<-chan string, error)
}

type chatService struct {
	retriever     *rag.Retriever
	responseCache *cache.ResponseCache
	prompts       *prompt.Builder
	llmProvider   llm.Provider
	log           logger.ILogger
}

func NewChatService(
	retriever *rag.Retriever,
	responseCache *cache.ResponseCache,
	prompts *prompt.Builder,
	llmProvider llm.Provider,
	log logger.ILogger,
) IChatService {
	return &chatService{
		retriever:     retriever,
		responseCache: responseCache,
		prompts:       prompts,
		llmProvider:   llmProvider,
		log:           log,
	}
}

func generationOptions() []llm.Option {
	return []llm.Option{
		llm.WithTemperature(constant.LLMTemperature),
		llm.WithTopP(constant.LLMTopP),
		llm.WithMaxTokens(constant.LLMMaxTokens),
	}
}

func toLLMHistory(turns []dto.ConversationTurn) []llm.Message {
	history := make([]llm.Message, len(turns))
	for i, turn := range turns {
		history[i] = llm.Message{Role: turn.Role, Content: turn.Content}
	}
	return history
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (string, error) {
	if cached, hit := s.responseCache.Get(ctx, req.Message); hit {
		s.log.Info("chat", "cache hit", map[string]interface{}{
			"query_hash": cache.Key(req.Message)[:8],
		})
		return cached, nil
	}

	contextBlock, err := s.retriever.Retrieve(ctx, req.Message)
	if err != nil {
		return "", err
	}

	// No relevant context: canned refusal, no LLM call, no cache write.
	if contextBlock == "" {
		return constant.NoContextMessage, nil
	}

	messages := s.prompts.BuildMessages(contextBlock, req.Message, toLLMHistory(req.ConversationHistory))

	answer, err := s.llmProvider.Chat(ctx, messages, generationOptions()...)
	if err != nil {
		// Buffered callers never see a completion error, only the fixed
		// fallback text. Failures are not cached.
		s.log.Error("chat", "completion failed", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.CompletionErrorMessage, nil
	}

	s.responseCache.Set(ctx, req.Message, answer)
	return answer, nil
}

func (s *chatService) ChatStream(ctx context.Context, req *dto.ChatRequest) (<-chan string, error) {
	contextBlock, err := s.retriever.Retrieve(ctx, req.Message)
	if err != nil {
		return nil, err
	}

	if contextBlock == "" {
		return oneShotStream(constant.NoContextMessage), nil
	}

	messages := s.prompts.BuildMessages(contextBlock, req.Message, toLLMHistory(req.ConversationHistory))

	fragments, err := s.llmProvider.ChatStream(ctx, messages, generationOptions()...)
	if err != nil {
		s.log.Error("chat", "stream start failed", map[string]interface{}{
			"error": err.Error(),
		})
		return oneShotStream(constant.StreamStartErrorMessage), nil
	}

	return fragments, nil
}

// oneShotStream wraps a fixed message in the stream contract so the
// transport always sees a sequence of fragments.
func oneShotStream(text string) <-chan string {
	ch := make(chan string, 1)
	ch <- text
	close(ch)
	return ch
}
