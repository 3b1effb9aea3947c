package api

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// sessionDuration bounds how long an issued admin token stays valid.
const sessionDuration = 12 * time.Hour

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	password  string
	secret    []byte
}

func newAuthHandler(password string, secret []byte) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		password:  password,
		secret:    secret,
	}
}

// login exchanges the admin password for a signed session token. The gate the
// site's admin panel used to keep purely client-side lives here instead, so
// the check happens on the server.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		if err := decodeBody(r, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if body.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if h.password == "" {
			h.responder.WriteError(w, errs.NewUnauthorizedError("admin login is not configured"))
			return
		}

		if body.Password != h.password {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		now := time.Now()
		claims := jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
		}

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue session token", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"token":   signed,
		})
	}
}
