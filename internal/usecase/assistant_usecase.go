package usecase

import (
	"context"
	"sync"

	"github.com/otaviobrantes/lumen/internal/assistant"
	"github.com/otaviobrantes/lumen/pkg/logger"
)

// User-facing fallback replies. The assistant degrades to an apology
// instead of surfacing an error.
const (
	replyMissingKey  = "Eu sou a Lumen. Por favor, configure sua chave de API para conversar comigo sobre a Bíblia."
	replyUnavailable = "A conexão com o guia espiritual está indisponível no momento."
	replyThinking    = "Estou meditando sobre isso..."
	replyConnTrouble = "Estou com dificuldades para me conectar à nuvem no momento. Por favor, tente novamente mais tarde."
)

// AssistantUseCase is the spiritual-guide chat. Each user holds one
// conversation; Reset discards it so the next message starts fresh.
type AssistantUseCase interface {
	SendMessage(ctx context.Context, userID, message string) string
	Reset(userID string)
}

type assistantUseCase struct {
	provider assistant.Provider
	logger   *logger.Logger

	mu    sync.Mutex
	chats map[string]assistant.Chat
}

// NewAssistantUseCase accepts a nil provider; it then answers every
// message with the missing-key reply.
func NewAssistantUseCase(provider assistant.Provider, logger *logger.Logger) AssistantUseCase {
	return &assistantUseCase{
		provider: provider,
		logger:   logger,
		chats:    make(map[string]assistant.Chat),
	}
}

func (uc *assistantUseCase) SendMessage(ctx context.Context, userID, message string) string {
	if uc.provider == nil {
		return replyMissingKey
	}

	chat, err := uc.chatFor(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to open assistant chat: %v", err)
		return replyUnavailable
	}

	reply, err := chat.SendMessage(ctx, message)
	if err != nil {
		uc.logger.Error("Assistant message failed: %v", err)
		// Drop the session; the next message reconnects.
		uc.Reset(userID)
		return replyConnTrouble
	}
	if reply == "" {
		return replyThinking
	}
	return reply
}

func (uc *assistantUseCase) Reset(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.chats, userID)
}

func (uc *assistantUseCase) chatFor(ctx context.Context, userID string) (assistant.Chat, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if chat, ok := uc.chats[userID]; ok {
		return chat, nil
	}

	chat, err := uc.provider.NewChat(ctx)
	if err != nil {
		return nil, err
	}
	uc.chats[userID] = chat
	return chat, nil
}
