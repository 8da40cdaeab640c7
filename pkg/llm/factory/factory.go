package factory

import (
	"fmt"

	"profile-chat-be/pkg/llm"
	"profile-chat-be/pkg/llm/groq"
	"profile-chat-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, groqBaseURL, groqApiKey, ollamaBaseURL string) (llm.Provider, error) {
	switch providerType {
	case "groq":
		if groqApiKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is not set")
		}
		return groq.NewGroqProvider(groqApiKey, groqBaseURL, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
