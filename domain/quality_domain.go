package domain

import (
	"errors"
	"fmt"
)

const (
	QualityFresh  = "Fresh"
	QualityMedium = "Medium"
	QualityStale  = "Stale"
)

var (
	MessageSuccessAnalyzeFood = "food quality analyzed successfully"

	MessageFailedAnalyzeFood  = "failed to analyze food quality"
	MessageNotFoodImage       = "this image does not appear to be food"
	MessageAIRateLimited      = "rate limit exceeded, please try again later"
	MessageAICreditsExhausted = "AI credits exhausted, please add credits to continue"

	ErrImageRequired      = errors.New("image is required")
	ErrInvalidImageData   = errors.New("invalid image data")
	ErrAIRateLimited      = errors.New("AI gateway rate limit exceeded")
	ErrAICreditsExhausted = errors.New("AI gateway credits exhausted")
	ErrAIUpstreamFailed   = errors.New("AI gateway request failed")
)

// ErrNotFood carries the model's reasoning for rejecting a non-food image.
type ErrNotFood struct {
	Reasoning string
}

func (e *ErrNotFood) Error() string {
	if e.Reasoning == "" {
		return "image is not food"
	}
	return fmt.Sprintf("image is not food: %s", e.Reasoning)
}

type (
	AnalyzeFoodRequest struct {
		ImageBase64 string `json:"image_base64" validate:"required"`
	}

	QualityAnalysis struct {
		Quality        string  `json:"quality"` // Fresh, Medium, Stale
		ShelfLifeHours int     `json:"shelf_life_hours"`
		Confidence     float64 `json:"confidence"` // 0-100
		Reasoning      string  `json:"reasoning"`
		IsFood         *bool   `json:"is_food,omitempty"`
	}
)

// NotesSummary renders the analysis as the one-line text embedded into
// reservation notes.
func (a *QualityAnalysis) NotesSummary() string {
	return fmt.Sprintf("AI Quality: %s (%.0f%%); Shelf-life: %dh; %s",
		a.Quality, a.Confidence, a.ShelfLifeHours, a.Reasoning)
}
