package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/amk-marketing/landing-api/internal/core/domain"
	"github.com/amk-marketing/landing-api/internal/core/ports"
)

// ContentService composes the Facebook-post prompt and proxies it to the
// generative-text API. No caching, no retries; one upstream call per request.
type ContentService struct {
	generator ports.TextGenerator
	logger    zerolog.Logger
}

func NewContentService(generator ports.TextGenerator, logger zerolog.Logger) *ContentService {
	return &ContentService{generator: generator, logger: logger}
}

// Generate requires topic and tone, builds the prompt, and returns the first
// generated candidate verbatim alongside an echo of the input metadata.
func (s *ContentService) Generate(ctx context.Context, input ports.GenerateContentInput) (*ports.GenerateContentResult, error) {
	if input.Topic == "" || input.Tone == "" {
		return nil, domain.ErrMissingTopicOrTone
	}

	content, err := s.generator.GenerateText(ctx, buildPrompt(input.Topic, input.Tone))
	if err != nil {
		s.logger.Error().Err(err).Str("topic", input.Topic).Msg("content generation failed")
		return nil, err
	}

	s.logger.Info().Str("topic", input.Topic).Str("tone", input.Tone).Msg("content generated")

	return &ports.GenerateContentResult{
		Content:     content,
		Topic:       input.Topic,
		Tone:        input.Tone,
		Date:        input.Date,
		Time:        input.Time,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// buildPrompt embeds the topic and tone into the fixed house-style
// instruction for AMK fanpage posts.
func buildPrompt(topic, tone string) string {
	return fmt.Sprintf(`Viết một bài đăng Facebook cho fanpage Auto Marketing - AMK (sản phẩm tự động hóa marketing) về chủ đề "%s" với tone %s.

Yêu cầu:
- Viết bằng tiếng Việt
- Văn bản thuần, không dùng markdown hay in đậm
- Độ dài khoảng 100-200 từ
- Dùng emoji phù hợp
- Có call-to-action rõ ràng
- Kết thúc bằng hashtag phù hợp

Nội dung cần tự nhiên, hấp dẫn và thu hút người đọc.`, topic, tone)
}
