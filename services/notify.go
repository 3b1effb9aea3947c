package services

import (
	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog/log"
)

// ContactNotifier fans a new contact submission out to whichever notification
// channels are configured. Callers run Notify in its own goroutine; failures
// are logged and dropped so a notification hiccup never surfaces to the
// visitor who submitted the form.
type ContactNotifier struct {
	cfg map[string]string
}

func NewContactNotifier(cfg map[string]string) *ContactNotifier {
	return &ContactNotifier{cfg: cfg}
}

func (n *ContactNotifier) Notify(submission models.Email) {
	if config.GetString(n.cfg, "RESEND_API_KEY", "") != "" {
		if err := NotifyContactEmail(n.cfg, submission); err != nil {
			log.Warn().Err(err).Msg("contact email notification failed")
		}
	}

	if config.GetString(n.cfg, "TWILIO_ACCOUNT_SID", "") != "" {
		if err := NotifyContactSMS(n.cfg, submission); err != nil {
			log.Warn().Err(err).Msg("contact sms notification failed")
		}
	}
}
