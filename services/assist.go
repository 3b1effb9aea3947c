package services

import (
	"context"
	"strings"

	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

const defaultDescribePrompt = "Describe this image in one or two sentences suitable for an alt attribute."

// AssistClient wraps the generative model behind the admin panel's writing and
// image-description helpers. A client built without a credential is still
// usable; its calls fail with errs.ErrAssistNotConfigured so the caller can
// tell a missing key apart from an upstream failure.
type AssistClient struct {
	model llms.Model
}

// NewAssistClient builds a client from OPENAI_API_KEY and ASSIST_MODEL.
func NewAssistClient(cfg map[string]string) *AssistClient {
	apiKey := config.GetString(cfg, "OPENAI_API_KEY", "")
	if apiKey == "" {
		return &AssistClient{}
	}

	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(config.GetString(cfg, "ASSIST_MODEL", "gpt-4o-mini")),
	)
	if err != nil {
		log.Warn().Err(err).Msg("assist model initialization failed")
		return &AssistClient{}
	}

	return &AssistClient{model: model}
}

// GenerateText forwards a text prompt to the model and returns its output.
func (c *AssistClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.model == nil {
		return "", errs.NewAssistNotConfiguredError()
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		return "", errs.NewAssistRejectedError(err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", errs.NewAssistEmptyOutputError()
	}

	return out, nil
}

// DescribeImage asks the model to describe an image given by URL or data URL.
func (c *AssistClient) DescribeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	if c.model == nil {
		return "", errs.NewAssistNotConfiguredError()
	}

	if prompt == "" {
		prompt = defaultDescribePrompt
	}

	messages := []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.ImageURLPart(imageURL),
				llms.TextPart(prompt),
			},
		},
	}

	resp, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", errs.NewAssistRejectedError(err)
	}

	if len(resp.Choices) == 0 {
		return "", errs.NewAssistEmptyOutputError()
	}

	out := strings.TrimSpace(resp.Choices[0].Content)
	if out == "" {
		return "", errs.NewAssistEmptyOutputError()
	}

	return out, nil
}
