package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type assistHandler struct {
	responder Responder
	logger    zerolog.Logger
	assist    *services.AssistClient
}

func newAssistHandler(assist *services.AssistClient) assistHandler {
	logger := log.With().Str("handlerName", "assistHandler").Logger()

	return assistHandler{
		responder: NewResponder(logger),
		logger:    logger,
		assist:    assist,
	}
}

// generateText forwards a prompt to the generative model and returns its text
func (h assistHandler) generateText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Prompt string `json:"prompt"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if body.Prompt == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("prompt"))
			return
		}

		text, err := h.assist.GenerateText(r.Context(), body.Prompt)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"text":    text,
		})
	}
}

// describeImage asks the generative model for a description of an image given
// by URL or data URL
func (h assistHandler) describeImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Image  string `json:"image"`
			Prompt string `json:"prompt"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if body.Image == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}

		text, err := h.assist.DescribeImage(r.Context(), body.Image, body.Prompt)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"text":    text,
		})
	}
}
