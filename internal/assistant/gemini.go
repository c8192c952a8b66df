package assistant

import (
	"context"

	"google.golang.org/genai"
)

const chatModel = "gemini-2.5-flash"

// systemInstruction sets the assistant persona. Responses are always in
// Brazilian Portuguese, matching the product language.
const systemInstruction = "Você é a Lumen, uma guia espiritual sábia, gentil e não-denominacional para uma plataforma de streaming cristã no estilo Netflix. Seu objetivo é recomendar histórias da Bíblia, explicar parábolas de forma simples e sugerir conteúdos baseados no humor do usuário. Responda sempre em Português (Brasil). Mantenha as respostas concisas (menos de 100 palavras) e encorajadoras."

// GeminiProvider creates chat sessions backed by the Gemini API.
type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{client: client}, nil
}

// NewChat opens a fresh conversation with the persona instruction applied.
func (p *GeminiProvider) NewChat(ctx context.Context) (Chat, error) {
	chat, err := p.client.Chats.Create(ctx, chatModel, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &geminiChat{chat: chat}, nil
}

type geminiChat struct {
	chat *genai.Chat
}

func (c *geminiChat) SendMessage(ctx context.Context, message string) (string, error) {
	res, err := c.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}
