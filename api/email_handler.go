package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultServiceType = "Not specified"

type emailHandler struct {
	responder Responder
	logger    zerolog.Logger
	emailRepo *database.EmailRepo
	notifier  *services.ContactNotifier
}

func newEmailHandler(emailRepo *database.EmailRepo, notifier *services.ContactNotifier) emailHandler {
	logger := log.With().Str("handlerName", "emailHandler").Logger()

	return emailHandler{
		responder: NewResponder(logger),
		logger:    logger,
		emailRepo: emailRepo,
		notifier:  notifier,
	}
}

// getAllEmails returns every email ordered by date descending (newest first).
// The response carries serviceType in camelCase; the model's json tags apply
// the service_type translation uniformly.
func (h emailHandler) getAllEmails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emails, err := h.emailRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "emails", err))
			return
		}

		if emails == nil {
			emails = []*models.Email{}
		}

		h.responder.WriteJSON(w, emails)
	}
}

// createEmail is the internal creation path used by the admin panel. The date
// is always server-assigned, never taken from the caller.
func (h emailHandler) createEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var email models.Email
		if err := decodeBody(r, &email); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if email.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if email.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if email.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		email.ID = 0
		email.Date = time.Now().UTC()
		if email.ServiceType == "" {
			email.ServiceType = defaultServiceType
		}
		if email.Status == "" {
			email.Status = "unread"
		}

		if err := h.emailRepo.Add(&email); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "email", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"email":   email,
		})
	}
}

// submitContact is the public contact-form path. All four fields are
// mandatory here, unlike the internal creation path where serviceType may be
// defaulted. Owner notifications go out asynchronously and never affect the
// response.
func (h emailHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission models.Email
		if err := decodeBody(r, &submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if submission.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if submission.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if submission.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}
		if submission.ServiceType == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("serviceType"))
			return
		}

		submission.ID = 0
		submission.Date = time.Now().UTC()
		submission.Status = "unread"

		if err := h.emailRepo.Add(&submission); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "email", err))
			return
		}

		if h.notifier != nil {
			go h.notifier.Notify(submission)
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"email":   submission,
		})
	}
}

// deleteEmail removes an email by the ?id=N query parameter
func (h emailHandler) deleteEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.emailRepo.Delete(id); err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, errs.NewNotFoundError("Email not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete", "email", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
