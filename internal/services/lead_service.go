package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/apexridge/roofline/internal/core"
	"github.com/apexridge/roofline/internal/core/assistant"
	"github.com/apexridge/roofline/internal/core/scoring"
	"github.com/apexridge/roofline/internal/models"
)

// Photo is an uploaded file attached to a submission.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// LeadService runs the submission pipeline: save photo, score, assess,
// persist, then notify the lead and the owner. Steps are strictly ordered
// within one submission; submissions are independent of each other.
type LeadService struct {
	store      core.LeadStore
	photos     core.PhotoStore
	assistant  *assistant.Assistant
	sender     core.MessageSender
	ownerPhone string
	log        zerolog.Logger
	now        func() time.Time
}

func NewLeadService(store core.LeadStore, photos core.PhotoStore, asst *assistant.Assistant, sender core.MessageSender, ownerPhone string, log zerolog.Logger) *LeadService {
	return &LeadService{
		store:      store,
		photos:     photos,
		assistant:  asst,
		sender:     sender,
		ownerPhone: ownerPhone,
		log:        log,
		now:        time.Now,
	}
}

// Submit processes one contact-form submission and returns the stored lead.
// Notification failures are logged and swallowed; a lead is never lost
// because an SMS could not be delivered.
func (s *LeadService) Submit(ctx context.Context, form *models.LeadForm, photo *Photo) (*models.Lead, error) {
	trimFields(form)

	photoFilename := ""
	if photo != nil && photo.Filename != "" {
		name, err := s.photos.Save(ctx, photo.Filename, photo.ContentType, photo.Data)
		if err != nil {
			return nil, fmt.Errorf("save photo: %w", err)
		}
		photoFilename = name
	}

	score := scoring.Score(scoring.Input{
		Phone:       form.Phone,
		Email:       form.Email,
		Address:     form.Address,
		JobType:     form.JobType,
		Description: form.Description,
	})

	assessment := s.assistant.PreQualify(ctx, form)

	lead := &models.Lead{
		Timestamp:          s.now(),
		Name:               form.Name,
		Phone:              form.Phone,
		Email:              form.Email,
		Address:            form.Address,
		JobType:            form.JobType,
		Description:        form.Description,
		PhotoFilename:      photoFilename,
		ChatbotInteraction: assessment,
		LeadScore:          score,
	}

	// Validation failure on free-text fields (e.g. a malformed email) is
	// logged, not fatal: a lead is still worth keeping.
	if err := models.ValidateStruct(lead); err != nil {
		s.log.Warn().Err(err).Msg("lead failed validation, storing anyway")
	}

	if err := s.store.Append(lead); err != nil {
		return nil, fmt.Errorf("store lead: %w", err)
	}
	s.log.Info().Int("score", score).Str("job_type", lead.JobType).Msg("lead stored")

	if lead.Phone != "" {
		msg := s.assistant.FollowUpMessage(form, "initial")
		if err := s.sender.Send(ctx, lead.Phone, msg); err != nil {
			s.log.Error().Err(err).Msg("failed to send follow-up SMS to lead")
		}
	}

	if s.ownerPhone != "" {
		if err := s.sender.Send(ctx, s.ownerPhone, ownerNotification(lead)); err != nil {
			s.log.Error().Err(err).Msg("failed to send new-lead SMS to owner")
		}
	}

	return lead, nil
}

func ownerNotification(lead *models.Lead) string {
	return fmt.Sprintf("🏠 NEW LEAD (Score: %d/10)\nName: %s\nPhone: %s\nJob: %s\nAI Assessment: %s",
		lead.LeadScore, lead.Name, lead.Phone, lead.JobType, lead.ChatbotInteraction)
}

func trimFields(form *models.LeadForm) {
	form.Name = strings.TrimSpace(form.Name)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Email = strings.TrimSpace(form.Email)
	form.Address = strings.TrimSpace(form.Address)
	form.JobType = strings.TrimSpace(form.JobType)
	form.Description = strings.TrimSpace(form.Description)
}
