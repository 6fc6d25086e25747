package core

import (
	"context"

	"github.com/apexridge/roofline/internal/models"
)

// CompletionProvider abstracts the external text-completion API so higher
// layers never depend on a specific vendor client.
type CompletionProvider interface {
	Generate(ctx context.Context, systemPrompt string, turns []Turn) (string, error)
}

// Turn is one message in a conversation sent to the completion provider.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// MessageSender delivers an outbound text message. Implementations report
// delivery failure as an error; the caller decides whether to degrade.
type MessageSender interface {
	Send(ctx context.Context, to, body string) error
}

// LeadStore appends submitted leads to the record log. There is no update,
// delete, or query path.
type LeadStore interface {
	Append(lead *models.Lead) error
}

// PhotoStore persists an uploaded photo and returns the stored filename.
// The stored name is derived from the submission timestamp plus the
// original filename, so it is unique per submission.
type PhotoStore interface {
	Save(ctx context.Context, originalName, contentType string, data []byte) (string, error)
}
