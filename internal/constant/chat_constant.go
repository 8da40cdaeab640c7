package constant

const (
	ChatMessageRoleSystem    = "system"
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// Answer returned when retrieval finds nothing relevant. Sent as a normal
// 200 response so the assistant stays on-topic without an error path.
const NoContextMessage = "I can only answer questions about Cory Fitzpatrick's professional experience, skills, and achievements. " +
	"Please ask about his background, technical expertise, or leadership experience."

// Fallback answers for completion failures. Buffered callers always get
// well-formed text; stream callers get a one-shot fragment.
const (
	CompletionErrorMessage  = "Sorry, an error occurred while processing your request. Please try again."
	StreamStartErrorMessage = "Sorry, I'm having trouble connecting to the AI model right now."
)

// DefaultSystemPromptTemplate is the built-in instruction template used when
// neither SYSTEM_PROMPT nor a prompt file is configured. {context} and
// {question} are substituted per request.
const DefaultSystemPromptTemplate = `You are an assistant for Cory Fitzpatrick's professional portfolio.
Answer the visitor's question using ONLY the reference material below.

<reference_material>
{context}
</reference_material>

Guidelines:
1. Base your answer strictly on the reference material
2. Keep answers concise and conversational (2-4 sentences)
3. If the material does not cover the question, say so honestly
4. Never invent employers, dates, or achievements

Question: {question}`

// Generation defaults for the completion client.
const (
	LLMTemperature = 0.3
	LLMTopP        = 0.9
	LLMMaxTokens   = 500
)

// Retrieval defaults. Tunable via RAG_TOP_K / RAG_MAX_DISTANCE; the distance
// gate assumes pgvector cosine distance and does not transfer to other metrics.
const (
	RetrievalTopK        = 5
	RetrievalMaxDistance = 1.5
)

// Rate limit defaults: hard reject above this per-IP budget.
const (
	RateLimitMax       = 20
	RateLimitWindowSec = 60
)

// DefaultCacheTTLSeconds is the response cache lifetime.
const DefaultCacheTTLSeconds = 3600

// BlockedUserAgents are scanner/crawler signatures rejected with 403.
// Matching is case-insensitive substring on the User-Agent header.
var BlockedUserAgents = []string{
	"masscan", "nmap", "nikto", "sqlmap", "metasploit", "burp",
	"w3af", "acunetix", "nessus", "qualys", "openvas",
	"zap", "skipfish", "wfuzz", "dirb", "dirbuster",
	"semrush", "ahrefsbot", "mj12bot", "dotbot",
}

// OpenPaths bypass the bot filter and rate limiter so uptime checks and
// operators always get through.
var OpenPaths = []string{"/", "/health", "/debug/db"}
