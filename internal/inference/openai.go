package inference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const repeatPenaltyField = "repeat_penalty"

type OpenAIConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxRetries int
}

// OpenAIEngine talks to an OpenAI-compatible chat completions endpoint, such
// as a local llama.cpp server.
type OpenAIEngine struct {
	client     openai.Client
	httpClient *http.Client
	model      string
	log        *slog.Logger
}

func NewOpenAIEngine(cfg OpenAIConfig, log *slog.Logger) (*OpenAIEngine, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errors.New("base URL is empty")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("model is empty")
	}

	httpClient := &http.Client{}

	return &OpenAIEngine{
		client: openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(cfg.APIKey),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(max(cfg.MaxRetries, 0)),
		),
		httpClient: httpClient,
		model:      model,
		log:        log,
	}, nil
}

func (e *OpenAIEngine) CreateChatCompletion(
	ctx context.Context,
	messages []Message,
	params Params,
) (Completion, error) {
	if len(messages) == 0 {
		return Completion{}, errors.New("messages are empty")
	}

	chatMessages := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		msg, err := toChatMessage(m)
		if err != nil {
			return Completion{}, err
		}
		chatMessages = append(chatMessages, msg)
	}

	reqParams := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(e.model),
		Messages:    chatMessages,
		Temperature: openai.Float(params.Temperature),
		TopP:        openai.Float(params.TopP),
	}
	if params.MaxTokens > 0 {
		reqParams.MaxTokens = openai.Int(params.MaxTokens)
	}

	resp, err := e.client.Chat.Completions.New(ctx, reqParams,
		option.WithJSONSet(repeatPenaltyField, params.RepeatPenalty))
	if err != nil {
		return Completion{}, fmt.Errorf("do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Completion{}, errors.New("response has no choices")
	}

	choice := resp.Choices[0]
	if choice.FinishReason == "length" {
		e.log.WarnContext(ctx, "Completion is truncated by max tokens",
			"model", e.model,
			"maxTokens", params.MaxTokens,
			"completionTokens", resp.Usage.CompletionTokens)
	}

	return Completion{Text: choice.Message.Content}, nil
}

// Close drops pooled connections to the endpoint.
func (e *OpenAIEngine) Close() error {
	e.httpClient.CloseIdleConnections()

	return nil
}

func toChatMessage(m Message) (openai.ChatCompletionMessageParamUnion, error) {
	switch m.Role {
	case RoleSystem:
		return openai.SystemMessage(m.Content), nil
	case RoleUser:
		return openai.UserMessage(m.Content), nil
	case RoleAssistant:
		return openai.AssistantMessage(m.Content), nil
	default:
		return openai.ChatCompletionMessageParamUnion{}, fmt.Errorf("unsupported role %q", m.Role)
	}
}
