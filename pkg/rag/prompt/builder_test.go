package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"profile-chat-be/internal/constant"
	"profile-chat-be/pkg/llm"
)

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	b := NewBuilder("CONTEXT:\n{context}\n\nQUESTION: {question}", "")

	got := b.Render("Q: q1\nA: a1", "who is cory?")
	want := "CONTEXT:\nQ: q1\nA: a1\n\nQUESTION: who is cory?"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestTemplatePriority(t *testing.T) {
	dir := t.TempDir()
	promptFile := filepath.Join(dir, "system_prompt.txt")
	if err := os.WriteFile(promptFile, []byte("file template {question}"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("inline wins over file", func(t *testing.T) {
		b := NewBuilder("inline template {question}", promptFile)
		if got := b.Render("", "q"); got != "inline template q" {
			t.Errorf("Render = %q", got)
		}
	})

	t.Run("file wins over default", func(t *testing.T) {
		b := NewBuilder("", promptFile)
		if got := b.Render("", "q"); got != "file template q" {
			t.Errorf("Render = %q", got)
		}
	})

	t.Run("missing file falls back to default", func(t *testing.T) {
		b := NewBuilder("", filepath.Join(dir, "does_not_exist.txt"))
		if b.template != constant.DefaultSystemPromptTemplate {
			t.Errorf("template = %q, want built-in default", b.template)
		}
	})

	t.Run("default when nothing configured", func(t *testing.T) {
		b := NewBuilder("", "")
		if b.template != constant.DefaultSystemPromptTemplate {
			t.Errorf("template = %q, want built-in default", b.template)
		}
	})
}

func TestBuildMessages(t *testing.T) {
	b := NewBuilder("You know this: {context}. Answer: {question}", "")

	history := []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: "earlier question"},
		{Role: constant.ChatMessageRoleAssistant, Content: "earlier answer"},
	}

	messages := b.BuildMessages("ctx", "current question", history)

	if len(messages) != 4 {
		t.Fatalf("message count = %d, want 4", len(messages))
	}
	if messages[0].Role != constant.ChatMessageRoleSystem {
		t.Errorf("first role = %q, want system", messages[0].Role)
	}
	if !strings.Contains(messages[0].Content, "ctx") || !strings.Contains(messages[0].Content, "current question") {
		t.Errorf("system turn missing substitutions: %q", messages[0].Content)
	}
	if messages[1] != history[0] || messages[2] != history[1] {
		t.Error("history not preserved verbatim in caller order")
	}
	last := messages[len(messages)-1]
	if last.Role != constant.ChatMessageRoleUser || last.Content != "current question" {
		t.Errorf("final turn = %+v, want the current question as user", last)
	}
}

func TestBuildMessagesNoHistory(t *testing.T) {
	b := NewBuilder("{context} {question}", "")

	messages := b.BuildMessages("", "q", nil)
	if len(messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(messages))
	}
	if messages[0].Role != constant.ChatMessageRoleSystem || messages[1].Role != constant.ChatMessageRoleUser {
		t.Errorf("roles = %q, %q", messages[0].Role, messages[1].Role)
	}
}
