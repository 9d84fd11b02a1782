package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/internal/utils"
)

const (
	groqChatURL = "https://api.groq.com/openai/v1/chat/completions"

	defaultChatModel = "llama-3.3-70b-versatile"

	// HistoryWindow caps how many prior turns are forwarded upstream.
	HistoryWindow = 10

	systemPrompt = "You are Food2Plate Assistant, a helpful AI assistant for the Food2Plate " +
		"food donation platform. You help users with questions about donating food, " +
		"reserving food, food safety, reducing food waste, and using the platform. " +
		"Keep answers concise and friendly. If asked about something unrelated to food " +
		"or the platform, politely steer the conversation back."
)

type (
	AssistantService interface {
		Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
	}

	assistantService struct {
		client  *http.Client
		baseURL string
		apiKey  string
		model   string
	}

	chatCompletionRequest struct {
		Model       string               `json:"model"`
		Messages    []chatMessagePayload `json:"messages"`
		Temperature float64              `json:"temperature"`
		MaxTokens   int                  `json:"max_tokens"`
	}

	chatMessagePayload struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatCompletionResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
)

func NewAssistantService() AssistantService {
	model := utils.GetConfig("GROQ_MODEL")
	if model == "" {
		model = defaultChatModel
	}
	return &assistantService{
		client:  &http.Client{Timeout: 60 * time.Second},
		baseURL: groqChatURL,
		apiKey:  utils.GetConfig("GROQ_API_KEY"),
		model:   model,
	}
}

// NewAssistantServiceWithClient is used by tests to point the service at
// a fake upstream.
func NewAssistantServiceWithClient(client *http.Client, baseURL string, apiKey string, model string) AssistantService {
	return &assistantService{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

func (s *assistantService) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	if req.Message == "" {
		return domain.ChatResponse{}, domain.ErrChatMessageRequired
	}
	if s.apiKey == "" {
		return domain.ChatResponse{}, domain.ErrChatAPIKeyMissing
	}

	history := req.ConversationHistory
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	messages := make([]chatMessagePayload, 0, len(history)+2)
	messages = append(messages, chatMessagePayload{Role: "system", Content: systemPrompt})
	for _, turn := range history {
		messages = append(messages, chatMessagePayload{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessagePayload{Role: "user", Content: req.Message})

	payload, err := json.Marshal(chatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return domain.ChatResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return domain.ChatResponse{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return domain.ChatResponse{}, fmt.Errorf("%w: %v", domain.ErrChatUpstreamFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ChatResponse{}, fmt.Errorf("%w: status %d", domain.ErrChatUpstreamFailed, resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return domain.ChatResponse{}, fmt.Errorf("%w: %v", domain.ErrChatUpstreamFailed, err)
	}
	if len(completion.Choices) == 0 {
		return domain.ChatResponse{}, domain.ErrChatUpstreamFailed
	}

	return domain.ChatResponse{Reply: completion.Choices[0].Message.Content}, nil
}
