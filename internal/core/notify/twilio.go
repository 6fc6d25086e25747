// Package notify sends outbound SMS to leads and to the business owner.
// Delivery is best-effort: no retry, no confirmation tracking.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/apexridge/roofline/internal/core"
)

type TwilioSender struct {
	client *twilio.RestClient
	from   string
	log    zerolog.Logger
}

func NewTwilioSender(accountSID, authToken, from string, log zerolog.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from, log: log}
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if to == "" {
		s.log.Debug().Msg("no destination number, skipping SMS")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}

	s.log.Info().Str("to", to).Msg("sent SMS")
	return nil
}

var _ core.MessageSender = (*TwilioSender)(nil)
