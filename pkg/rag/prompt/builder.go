package prompt

import (
	"os"
	"strings"

	"profile-chat-be/internal/constant"
	"profile-chat-be/pkg/llm"
)

// Builder renders the instruction template and assembles the message list
// sent to the model. The template is fixed at construction: inline config
// wins over a prompt file, which wins over the built-in default.
type Builder struct {
	template string
}

// NewBuilder resolves the template once at process start.
func NewBuilder(inlineTemplate, templateFile string) *Builder {
	if inlineTemplate != "" {
		return &Builder{template: inlineTemplate}
	}

	if templateFile != "" {
		if content, err := os.ReadFile(templateFile); err == nil && len(content) > 0 {
			return &Builder{template: string(content)}
		}
	}

	return &Builder{template: constant.DefaultSystemPromptTemplate}
}

// Render substitutes the retrieved context and the question into the
// template.
func (b *Builder) Render(contextBlock, question string) string {
	rendered := strings.ReplaceAll(b.template, "{context}", contextBlock)
	return strings.ReplaceAll(rendered, "{question}", question)
}

// BuildMessages produces the full conversation sent to the model: the
// rendered system turn always first, caller history verbatim in caller
// order, then the current question as the final user turn.
func (b *Builder) BuildMessages(contextBlock, question string, history []llm.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: b.Render(contextBlock, question),
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: question,
	})
	return messages
}
