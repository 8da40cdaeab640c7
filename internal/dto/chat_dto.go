package dto

// ConversationTurn is one caller-supplied message. History is passed through
// to the model verbatim; only the roles are constrained.
type ConversationTurn struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Message             string             `json:"message" validate:"required"`
	ConversationHistory []ConversationTurn `json:"conversation_history" validate:"omitempty,dive"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the uniform non-2xx body: a detail string, never internals.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Model    string `json:"model"`
	Provider string `json:"provider"`
}

type RootResponse struct {
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
	Model     string            `json:"model"`
	Provider  string            `json:"provider"`
}

type DebugDBResponse struct {
	Status        string          `json:"status"`
	Table         string          `json:"table,omitempty"`
	DocumentCount int64           `json:"document_count"`
	Sample        *SampleDocument `json:"sample_document,omitempty"`
	Error         string          `json:"error,omitempty"`
}

type SampleDocument struct {
	Id       int    `json:"id"`
	Question string `json:"question"`
}
