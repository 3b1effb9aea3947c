package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxUploadSize caps admin image uploads at 10MB.
const maxUploadSize = 10 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  *services.ImageUploader
}

func newUploadHandler(uploader *services.ImageUploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// uploadImage stores a multipart "image" file and returns its public URL,
// which the admin panel then puts in a record's image field.
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewInternalError("image storage is not configured"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), filepath.Ext(header.Filename))
		url, err := h.uploader.Upload(r.Context(), key, contentType, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to upload image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"url":     url,
		})
	}
}
