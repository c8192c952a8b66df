package assistant

import "context"

// Chat is one ongoing conversation.
type Chat interface {
	SendMessage(ctx context.Context, message string) (string, error)
}

// Provider opens conversations with the backing model.
type Provider interface {
	NewChat(ctx context.Context) (Chat, error)
}
