// Package assistant is the conversational layer of the site: it answers
// visitor chat messages with the roofing knowledge prompt, produces a
// pre-qualification assessment for each submitted lead, and renders the
// templated follow-up messages sent by SMS.
package assistant

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/apexridge/roofline/internal/core"
	"github.com/apexridge/roofline/internal/models"
)

// Fallback strings returned when the completion provider is unconfigured
// or a call to it fails. They are user-facing and must stay stable.
const (
	unavailableReply = "I'm sorry, but the chatbot service is currently unavailable. Please fill out the form below and we'll get back to you soon!"
	errorReply       = "I'm experiencing some technical difficulties. Please fill out the form below and our team will contact you directly!"

	unavailableAssessment = "Lead received - manual review required."
)

// Assistant proxies conversations to a completion provider. A nil provider
// means the assistant runs in degraded mode and only serves fallbacks.
type Assistant struct {
	provider core.CompletionProvider
	sessions *sessionStore
	log      zerolog.Logger
}

func New(provider core.CompletionProvider, historyWindow int, log zerolog.Logger) *Assistant {
	if historyWindow <= 0 {
		historyWindow = 10
	}
	return &Assistant{
		provider: provider,
		sessions: newSessionStore(historyWindow),
		log:      log,
	}
}

// Respond answers a visitor chat message. The returned session ID should be
// echoed back by the widget on the next message so the conversation keeps
// its context. Provider failures degrade to a static apology, never an
// error.
func (a *Assistant) Respond(ctx context.Context, sessionID, message string, userInfo map[string]string) (reply, sid string) {
	sid = a.sessions.resolve(sessionID)

	if a.provider == nil {
		return unavailableReply, sid
	}

	turns := append(a.sessions.history(sid), core.Turn{Role: "user", Content: message})

	reply, err := a.provider.Generate(ctx, systemPrompt(userInfo), turns)
	if err != nil {
		a.log.Warn().Err(err).Str("session_id", sid).Msg("chat completion failed, returning fallback")
		return errorReply, sid
	}

	a.sessions.append(sid, message, reply)
	return reply, sid
}

// PreQualify asks the provider for a short assessment of the lead for the
// sales team. Degrades to a deterministic template on any failure.
func (a *Assistant) PreQualify(ctx context.Context, form *models.LeadForm) string {
	if a.provider == nil {
		return unavailableAssessment
	}

	prompt := fmt.Sprintf(preQualifyTemplate,
		orDefault(form.Name, "Not provided"),
		orDefault(form.Phone, "Not provided"),
		orDefault(form.Email, "Not provided"),
		orDefault(form.Address, "Not provided"),
		orDefault(form.JobType, "Not specified"),
		orDefault(form.Description, "No description"),
	)

	assessment, err := a.provider.Generate(ctx, "", []core.Turn{{Role: "user", Content: prompt}})
	if err != nil {
		a.log.Warn().Err(err).Msg("pre-qualification failed, returning fallback")
		return fmt.Sprintf("Lead received for %s at %s. Manual review recommended.",
			orDefault(form.JobType, "roofing service"),
			orDefault(form.Address, "address not provided"))
	}
	return assessment
}

// FollowUpMessage renders the outbound SMS for a lead. Pure templating, no
// provider call; an unrecognized message type falls through to the default
// sentence.
func (a *Assistant) FollowUpMessage(form *models.LeadForm, messageType string) string {
	name := orDefault(form.Name, "there")
	jobType := orDefault(form.JobType, "roofing project")

	switch messageType {
	case "initial":
		return fmt.Sprintf("Hi %s! Thanks for reaching out about your %s. We've received your information and will contact you within 24 hours to schedule a free inspection. Have questions? Call us at (555) 123-ROOF!", name, jobType)
	case "reminder":
		return fmt.Sprintf("Hi %s, just a friendly reminder about your upcoming roofing inspection. We're looking forward to helping with your %s. Please call if you need to reschedule: (555) 123-ROOF", name, jobType)
	case "follow_up":
		return fmt.Sprintf("Hi %s, we hope you received your roofing estimate! If you have any questions about your %s or would like to move forward, please don't hesitate to contact us at (555) 123-ROOF.", name, jobType)
	}
	return fmt.Sprintf("Hi %s, thank you for your interest in our roofing services. We're here to help with your %s!", name, jobType)
}
