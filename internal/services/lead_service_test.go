package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/apexridge/roofline/internal/core/assistant"
	"github.com/apexridge/roofline/internal/models"
)

type fakeStore struct {
	leads []*models.Lead
	err   error
}

func (f *fakeStore) Append(lead *models.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.leads = append(f.leads, lead)
	return nil
}

type fakePhotoStore struct {
	saved []string
	err   error
}

func (f *fakePhotoStore) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	name := "20260314093000_" + originalName
	f.saved = append(f.saved, name)
	return name, nil
}

type fakeSender struct {
	sent []struct{ To, Body string }
	err  error
}

func (f *fakeSender) Send(ctx context.Context, to, body string) error {
	f.sent = append(f.sent, struct{ To, Body string }{to, body})
	return f.err
}

func newTestService(store *fakeStore, photos *fakePhotoStore, sender *fakeSender, ownerPhone string) *LeadService {
	asst := assistant.New(nil, 10, zerolog.Nop())
	svc := NewLeadService(store, photos, asst, sender, ownerPhone, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestSubmit(t *testing.T) {
	store := &fakeStore{}
	sender := &fakeSender{}
	svc := newTestService(store, &fakePhotoStore{}, sender, "+15550009999")

	form := &models.LeadForm{
		Name:        "  Jo Smith  ",
		Phone:       "555-1234",
		Address:     "123 Main St",
		JobType:     "emergency",
		Description: strings.Repeat("a", 60),
	}

	lead, err := svc.Submit(context.Background(), form, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if lead.Name != "Jo Smith" {
		t.Errorf("name = %q, want trimmed", lead.Name)
	}
	if lead.LeadScore != 8 {
		t.Errorf("score = %d, want 8", lead.LeadScore)
	}
	if lead.ChatbotInteraction == "" {
		t.Error("assessment not set")
	}
	if len(store.leads) != 1 {
		t.Fatalf("stored leads = %d, want 1", len(store.leads))
	}

	// Lead SMS first, then owner SMS.
	if len(sender.sent) != 2 {
		t.Fatalf("SMS sent = %d, want 2", len(sender.sent))
	}
	if sender.sent[0].To != "555-1234" || !strings.Contains(sender.sent[0].Body, "Hi Jo Smith") {
		t.Errorf("lead SMS = %+v", sender.sent[0])
	}
	if sender.sent[1].To != "+15550009999" || !strings.Contains(sender.sent[1].Body, "NEW LEAD (Score: 8/10)") {
		t.Errorf("owner SMS = %+v", sender.sent[1])
	}
}

func TestSubmit_SavesPhotoBeforeRecord(t *testing.T) {
	store := &fakeStore{}
	photos := &fakePhotoStore{}
	svc := newTestService(store, photos, &fakeSender{}, "")

	photo := &Photo{Filename: "roof.jpg", ContentType: "image/jpeg", Data: []byte("img")}
	lead, err := svc.Submit(context.Background(), &models.LeadForm{Name: "Jo"}, photo)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if lead.PhotoFilename != "20260314093000_roof.jpg" {
		t.Errorf("photo filename = %q", lead.PhotoFilename)
	}
	if len(photos.saved) != 1 {
		t.Errorf("photos saved = %d, want 1", len(photos.saved))
	}
}

func TestSubmit_PhotoFailureAbortsSubmission(t *testing.T) {
	store := &fakeStore{}
	photos := &fakePhotoStore{err: errors.New("disk full")}
	svc := newTestService(store, photos, &fakeSender{}, "")

	photo := &Photo{Filename: "roof.jpg", Data: []byte("img")}
	if _, err := svc.Submit(context.Background(), &models.LeadForm{}, photo); err == nil {
		t.Fatal("expected error when photo save fails")
	}
	if len(store.leads) != 0 {
		t.Error("no record should be written when the photo was not persisted")
	}
}

func TestSubmit_NoPhoneSkipsLeadSMS(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(&fakeStore{}, &fakePhotoStore{}, sender, "+15550009999")

	if _, err := svc.Submit(context.Background(), &models.LeadForm{Name: "Jo"}, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("SMS sent = %d, want owner only", len(sender.sent))
	}
	if sender.sent[0].To != "+15550009999" {
		t.Errorf("SMS went to %q, want owner", sender.sent[0].To)
	}
}

func TestSubmit_NoOwnerSkipsOwnerSMS(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(&fakeStore{}, &fakePhotoStore{}, sender, "")

	if _, err := svc.Submit(context.Background(), &models.LeadForm{Phone: "555-1234"}, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0].To != "555-1234" {
		t.Errorf("sent = %+v, want lead SMS only", sender.sent)
	}
}

func TestSubmit_SendFailureDoesNotFailSubmission(t *testing.T) {
	store := &fakeStore{}
	sender := &fakeSender{err: errors.New("carrier rejected")}
	svc := newTestService(store, &fakePhotoStore{}, sender, "+15550009999")

	lead, err := svc.Submit(context.Background(), &models.LeadForm{Phone: "555-1234"}, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if lead == nil || len(store.leads) != 1 {
		t.Error("lead should be stored even when SMS delivery fails")
	}
}

// Submitting the same form twice is expected duplication: two records, two
// rounds of notifications.
func TestSubmit_NoDedup(t *testing.T) {
	store := &fakeStore{}
	sender := &fakeSender{}
	svc := newTestService(store, &fakePhotoStore{}, sender, "+15550009999")

	form := models.LeadForm{Name: "Jo", Phone: "555-1234"}
	for i := 0; i < 2; i++ {
		f := form
		if _, err := svc.Submit(context.Background(), &f, nil); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}

	if len(store.leads) != 2 {
		t.Errorf("stored leads = %d, want 2", len(store.leads))
	}
	if len(sender.sent) != 4 {
		t.Errorf("SMS sent = %d, want 4", len(sender.sent))
	}
}

// A malformed email fails model validation; the submission is logged and
// kept rather than rejected.
func TestSubmit_InvalidEmailLoggedNotRejected(t *testing.T) {
	store := &fakeStore{}
	var logBuf bytes.Buffer
	asst := assistant.New(nil, 10, zerolog.Nop())
	svc := NewLeadService(store, &fakePhotoStore{}, asst, &fakeSender{}, "", zerolog.New(&logBuf))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}

	lead, err := svc.Submit(context.Background(), &models.LeadForm{Email: "not-an-email"}, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(store.leads) != 1 || lead.Email != "not-an-email" {
		t.Error("lead with malformed email should still be stored")
	}
	if !strings.Contains(logBuf.String(), "lead failed validation") {
		t.Errorf("validation failure not logged: %s", logBuf.String())
	}
}

func TestSubmit_ValidLeadLogsNoValidationWarning(t *testing.T) {
	var logBuf bytes.Buffer
	asst := assistant.New(nil, 10, zerolog.Nop())
	svc := NewLeadService(&fakeStore{}, &fakePhotoStore{}, asst, &fakeSender{}, "", zerolog.New(&logBuf))
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}

	if _, err := svc.Submit(context.Background(), &models.LeadForm{Email: "jo@example.com"}, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if strings.Contains(logBuf.String(), "failed validation") {
		t.Errorf("unexpected validation warning: %s", logBuf.String())
	}
}

func TestSubmit_StoreFailurePropagates(t *testing.T) {
	store := &fakeStore{err: errors.New("no space")}
	sender := &fakeSender{}
	svc := newTestService(store, &fakePhotoStore{}, sender, "+15550009999")

	if _, err := svc.Submit(context.Background(), &models.LeadForm{Phone: "555-1234"}, nil); err == nil {
		t.Fatal("expected error when the record store fails")
	}
	if len(sender.sent) != 0 {
		t.Error("no SMS should go out when the record was not persisted")
	}
}
