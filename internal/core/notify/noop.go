package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/apexridge/roofline/internal/core"
)

// NoopSender stands in when the messaging provider is unconfigured. Every
// send is logged and skipped.
type NoopSender struct {
	log zerolog.Logger
}

func NewNoopSender(log zerolog.Logger) *NoopSender {
	return &NoopSender{log: log}
}

func (s *NoopSender) Send(ctx context.Context, to, body string) error {
	s.log.Info().Str("to", to).Msg("messaging provider not configured, skipping SMS")
	return nil
}

var _ core.MessageSender = (*NoopSender)(nil)
