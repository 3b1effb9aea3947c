package services

import (
	"fmt"

	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyContactSMS texts the site owner about a new contact submission.
//
// Requires environment variables:
//   - TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN: Twilio credentials
//   - TWILIO_FROM_NUMBER: the sending number
//   - CONTACT_NOTIFY_NUMBER: the owner number receiving the text
func NotifyContactSMS(cfg map[string]string, submission models.Email) error {
	accountSID := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	authToken := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	from := config.GetString(cfg, "TWILIO_FROM_NUMBER", "")
	to := config.GetString(cfg, "CONTACT_NOTIFY_NUMBER", "")
	if accountSID == "" || authToken == "" || from == "" || to == "" {
		return fmt.Errorf("twilio notification is not fully configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	body := fmt.Sprintf("New inquiry from %s (%s): %s", submission.Name, submission.ServiceType, submission.Message)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	message, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send twilio notification: %w", err)
	}

	if message.Sid != nil {
		log.Info().Str("messageSid", *message.Sid).Msg("Sent contact notification via Twilio")
	}

	return nil
}
