package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type certificationHandler struct {
	responder         Responder
	logger            zerolog.Logger
	certificationRepo *database.CertificationRepo
}

func newCertificationHandler(certificationRepo *database.CertificationRepo) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		certificationRepo: certificationRepo,
	}
}

// getAllCertifications returns every certification ordered by id ascending
func (h certificationHandler) getAllCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certifications, err := h.certificationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certifications", err))
			return
		}

		if certifications == nil {
			certifications = []*models.Certification{}
		}

		h.responder.WriteJSON(w, certifications)
	}
}

// createCertification validates and persists a new certification
func (h certificationHandler) createCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var certification models.Certification
		if err := decodeBody(r, &certification); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if certification.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		certification.ID = 0
		if certification.Skills == nil {
			certification.Skills = models.StringList{}
		}

		if err := h.certificationRepo.Add(&certification); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certification", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success":       true,
			"certification": certification,
		})
	}
}

// updateCertification fully replaces an existing certification
func (h certificationHandler) updateCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var certification models.Certification
		if err := decodeBody(r, &certification); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if certification.ID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		existing, err := h.certificationRepo.FindByID(certification.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certification", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Certification not found"))
			return
		}

		if certification.Skills == nil {
			certification.Skills = models.StringList{}
		}

		if err := h.certificationRepo.Update(&certification); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certification", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":       true,
			"certification": certification,
		})
	}
}

// deleteCertification removes a certification by the ?id=N query parameter
func (h certificationHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.certificationRepo.Delete(id); err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, errs.NewNotFoundError("Certification not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete", "certification", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
