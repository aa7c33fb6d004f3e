package inference

import (
	"context"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Params are the only sampling knobs callers control.
type Params struct {
	MaxTokens     int64
	Temperature   float64
	TopP          float64
	RepeatPenalty float64
}

type Completion struct {
	Text string
}

// Engine turns a chat transcript into generated text. One handle is created
// at startup, shared by every call, and released with Close.
type Engine interface {
	CreateChatCompletion(ctx context.Context, messages []Message, params Params) (Completion, error)
	Close() error
}
