package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/stretchr/testify/assert"
)

func newUnconfiguredAssistHandler() assistHandler {
	return newAssistHandler(services.NewAssistClient(map[string]string{}))
}

func TestGenerateTextRequiresPrompt(t *testing.T) {
	h := newUnconfiguredAssistHandler()

	rec := performRequest(t, h.generateText(), http.MethodPost, "/assist/text", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateTextWithoutCredentialIsServiceUnavailable(t *testing.T) {
	h := newUnconfiguredAssistHandler()

	rec := performRequest(t, h.generateText(), http.MethodPost, "/assist/text", map[string]any{
		"prompt": "Draft a project blurb",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDescribeImageRequiresImage(t *testing.T) {
	h := newUnconfiguredAssistHandler()

	rec := performRequest(t, h.describeImage(), http.MethodPost, "/assist/describe-image", map[string]any{
		"prompt": "alt text please",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDescribeImageWithoutCredentialIsServiceUnavailable(t *testing.T) {
	h := newUnconfiguredAssistHandler()

	rec := performRequest(t, h.describeImage(), http.MethodPost, "/assist/describe-image", map[string]any{
		"image": "https://example.com/pic.png",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
