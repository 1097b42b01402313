package assistantinfra

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/hirelink/hirelink/assistant"
)

const (
	defaultChatModel = "gpt-4o-mini"

	// Replies stay short so they read well in the chat widget
	maxReplyTokens = 300
	temperature    = 0.7
)

// OpenAIGenerator implements assistant.TextGenerator using the OpenAI
// chat completions API
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a new OpenAI-backed generator. An empty
// model selects the default.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = defaultChatModel
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIGenerator{
		client: &client,
		model:  model,
	}
}

// Generate produces a reply for the prompt, replaying the prior
// conversation first. History entries with unknown roles are dropped.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, history []assistant.HistoryMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	for _, msg := range history {
		switch msg.Role {
		case "user":
			messages = append(messages, openai.UserMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}
	messages = append(messages, openai.UserMessage(prompt))

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       openai.ChatModel(g.model),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxReplyTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat api error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	return completion.Choices[0].Message.Content, nil
}
