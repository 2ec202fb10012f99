package ports

import (
	"context"
	"time"
)

// GenerateContentInput is the payload for a sample-post generation request.
// Date and Time are opaque scheduling hints echoed back to the client.
type GenerateContentInput struct {
	Topic string
	Tone  string
	Date  string
	Time  string
}

// GenerateContentResult carries the generated copy plus an echo of the input.
type GenerateContentResult struct {
	Content     string
	Topic       string
	Tone        string
	Date        string
	Time        string
	GeneratedAt time.Time
}

// ContentService produces sample Facebook post copy via the generative API.
type ContentService interface {
	Generate(ctx context.Context, input GenerateContentInput) (*GenerateContentResult, error)
}

// TextGenerator is the outbound boundary toward the generative-text API.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
