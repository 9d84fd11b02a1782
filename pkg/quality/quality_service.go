package quality

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
	defaultGatewayURL  = "https://ai.gateway.lovable.dev/v1/chat/completions"
	defaultVisionModel = "google/gemini-2.5-flash"

	analyzeToolName = "analyze_food_quality"

	visionPrompt = "Analyze this food image. Determine whether the image shows food, " +
		"the food's freshness (Fresh, Medium, or Stale), an estimated remaining " +
		"shelf life in hours, your confidence as a percentage, and a short reasoning. " +
		"Call the analyze_food_quality function with your findings."
)

type (
	QualityService interface {
		AnalyzeFood(ctx context.Context, req domain.AnalyzeFoodRequest) (*domain.QualityAnalysis, error)
	}

	qualityService struct {
		client  *http.Client
		baseURL string
		apiKey  string
		model   string
	}

	visionRequest struct {
		Model      string          `json:"model"`
		Messages   []visionMessage `json:"messages"`
		Tools      []toolSpec      `json:"tools"`
		ToolChoice toolChoice      `json:"tool_choice"`
	}

	visionMessage struct {
		Role    string        `json:"role"`
		Content []contentPart `json:"content"`
	}

	contentPart struct {
		Type     string    `json:"type"`
		Text     string    `json:"text,omitempty"`
		ImageURL *imageURL `json:"image_url,omitempty"`
	}

	imageURL struct {
		URL string `json:"url"`
	}

	toolSpec struct {
		Type     string       `json:"type"`
		Function toolFunction `json:"function"`
	}

	toolFunction struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	}

	toolChoice struct {
		Type     string `json:"type"`
		Function struct {
			Name string `json:"name"`
		} `json:"function"`
	}

	visionResponse struct {
		Choices []struct {
			Message struct {
				ToolCalls []struct {
					Function struct {
						Name      string `json:"name"`
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
	}

	analysisArguments struct {
		IsFood         bool    `json:"isFood"`
		Quality        string  `json:"quality"`
		ShelfLifeHours int     `json:"shelfLifeHours"`
		Confidence     float64 `json:"confidence"`
		Reasoning      string  `json:"reasoning"`
	}
)

var analyzeToolParameters = json.RawMessage(`{
	"type": "object",
	"properties": {
		"isFood": {"type": "boolean", "description": "Whether the image shows food"},
		"quality": {"type": "string", "enum": ["Fresh", "Medium", "Stale"]},
		"shelfLifeHours": {"type": "integer", "description": "Estimated remaining shelf life in hours"},
		"confidence": {"type": "number", "description": "Confidence percentage, 0-100"},
		"reasoning": {"type": "string", "description": "Short explanation of the assessment"}
	},
	"required": ["isFood", "quality", "shelfLifeHours", "confidence", "reasoning"]
}`)

func NewQualityService() QualityService {
	baseURL := utils.GetConfig("AI_GATEWAY_URL")
	if baseURL == "" {
		baseURL = defaultGatewayURL
	}
	model := utils.GetConfig("AI_VISION_MODEL")
	if model == "" {
		model = defaultVisionModel
	}
	return &qualityService{
		client:  &http.Client{Timeout: 60 * time.Second},
		baseURL: baseURL,
		apiKey:  utils.GetConfig("AI_GATEWAY_KEY"),
		model:   model,
	}
}

// NewQualityServiceWithClient points the service at a fake upstream in tests.
func NewQualityServiceWithClient(client *http.Client, baseURL string, apiKey string, model string) QualityService {
	return &qualityService{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// AnalyzeFood sends the image to the vision gateway with a forced tool
// call so the reply is always structured. Upstream quota statuses pass
// through as their own error kinds, and non-food images are rejected
// with the model's reasoning attached.
func (s *qualityService) AnalyzeFood(ctx context.Context, req domain.AnalyzeFoodRequest) (*domain.QualityAnalysis, error) {
	if req.ImageBase64 == "" {
		return nil, domain.ErrImageRequired
	}

	choice := toolChoice{Type: "function"}
	choice.Function.Name = analyzeToolName

	payload, err := json.Marshal(visionRequest{
		Model: s.model,
		Messages: []visionMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: visionPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: req.ImageBase64}},
			},
		}},
		Tools: []toolSpec{{
			Type: "function",
			Function: toolFunction{
				Name:        analyzeToolName,
				Description: "Report the food quality assessment for the image",
				Parameters:  analyzeToolParameters,
			},
		}},
		ToolChoice: choice,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUpstreamFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, domain.ErrAIRateLimited
	case http.StatusPaymentRequired:
		return nil, domain.ErrAICreditsExhausted
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrAIUpstreamFailed, resp.StatusCode)
	}

	var vision visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&vision); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUpstreamFailed, err)
	}
	if len(vision.Choices) == 0 || len(vision.Choices[0].Message.ToolCalls) == 0 {
		return nil, fmt.Errorf("%w: no tool call in response", domain.ErrAIUpstreamFailed)
	}

	var args analysisArguments
	raw := vision.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUpstreamFailed, err)
	}

	if !args.IsFood {
		return nil, &domain.ErrNotFood{Reasoning: args.Reasoning}
	}

	isFood := args.IsFood
	return &domain.QualityAnalysis{
		Quality:        args.Quality,
		ShelfLifeHours: args.ShelfLifeHours,
		Confidence:     args.Confidence,
		Reasoning:      args.Reasoning,
		IsFood:         &isFood,
	}, nil
}
