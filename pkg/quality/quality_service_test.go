package quality

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Food2Plate-Backend/domain"

	"github.com/stretchr/testify/assert"
)

func toolCallBody(arguments string) string {
	body := map[string]any{
		"choices": []map[string]any{{
			"message": map[string]any{
				"tool_calls": []map[string]any{{
					"function": map[string]any{
						"name":      analyzeToolName,
						"arguments": arguments,
					},
				}},
			},
		}},
	}
	encoded, _ := json.Marshal(body)
	return string(encoded)
}

func TestAnalyzeFood(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req visionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, analyzeToolName, req.ToolChoice.Function.Name)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(toolCallBody(`{"isFood":true,"quality":"Fresh","shelfLifeHours":48,"confidence":92,"reasoning":"Bright color and firm texture"}`)))
	}))
	defer server.Close()

	service := NewQualityServiceWithClient(server.Client(), server.URL, "test-key", defaultVisionModel)

	res, err := service.AnalyzeFood(context.Background(), domain.AnalyzeFoodRequest{
		ImageBase64: "data:image/jpeg;base64,abc123",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.QualityFresh, res.Quality)
	assert.Equal(t, 48, res.ShelfLifeHours)
	assert.Equal(t, 92.0, res.Confidence)
	assert.Equal(t, "Bright color and firm texture", res.Reasoning)
}

func TestAnalyzeFoodNotFood(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(toolCallBody(`{"isFood":false,"quality":"Stale","shelfLifeHours":0,"confidence":97,"reasoning":"The image shows a laptop"}`)))
	}))
	defer server.Close()

	service := NewQualityServiceWithClient(server.Client(), server.URL, "test-key", defaultVisionModel)

	_, err := service.AnalyzeFood(context.Background(), domain.AnalyzeFoodRequest{
		ImageBase64: "data:image/jpeg;base64,abc123",
	})
	var notFood *domain.ErrNotFood
	assert.ErrorAs(t, err, &notFood)
	assert.Equal(t, "The image shows a laptop", notFood.Reasoning)
}

func TestAnalyzeFoodRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	service := NewQualityServiceWithClient(server.Client(), server.URL, "test-key", defaultVisionModel)

	_, err := service.AnalyzeFood(context.Background(), domain.AnalyzeFoodRequest{
		ImageBase64: "data:image/jpeg;base64,abc123",
	})
	assert.ErrorIs(t, err, domain.ErrAIRateLimited)
}

func TestAnalyzeFoodCreditsExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	service := NewQualityServiceWithClient(server.Client(), server.URL, "test-key", defaultVisionModel)

	_, err := service.AnalyzeFood(context.Background(), domain.AnalyzeFoodRequest{
		ImageBase64: "data:image/jpeg;base64,abc123",
	})
	assert.ErrorIs(t, err, domain.ErrAICreditsExhausted)
}

func TestAnalyzeFoodMissingImage(t *testing.T) {
	service := NewQualityServiceWithClient(http.DefaultClient, "http://unused", "test-key", defaultVisionModel)

	_, err := service.AnalyzeFood(context.Background(), domain.AnalyzeFoodRequest{})
	assert.ErrorIs(t, err, domain.ErrImageRequired)
}

func TestAnalyzeFoodNoToolCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{}}]}`))
	}))
	defer server.Close()

	service := NewQualityServiceWithClient(server.Client(), server.URL, "test-key", defaultVisionModel)

	_, err := service.AnalyzeFood(context.Background(), domain.AnalyzeFoodRequest{
		ImageBase64: "data:image/jpeg;base64,abc123",
	})
	assert.ErrorIs(t, err, domain.ErrAIUpstreamFailed)
}
