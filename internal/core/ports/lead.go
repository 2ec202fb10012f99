package ports

import (
	"context"
	"time"

	"github.com/amk-marketing/landing-api/internal/core/domain"
)

// SubmitLeadInput carries a validated demo request. Optional fields are empty
// strings when the form left them blank.
type SubmitLeadInput struct {
	FullName         string
	Phone            string
	Email            string
	Organization     string
	OrganizationType string
	Requirements     string
}

// SubmitLeadResult is returned once the lead is both stored and relayed.
type SubmitLeadResult struct {
	ID        int
	CreatedAt time.Time
}

// LeadService defines the use-case operations for demo requests.
type LeadService interface {
	// SubmitLead stores the lead and relays it to the automation webhook.
	// Success means both steps completed; a relay failure rolls the stored
	// record back and surfaces an error wrapping domain.ErrWebhookFailed.
	SubmitLead(ctx context.Context, input SubmitLeadInput) (*SubmitLeadResult, error)
	// ListLeads returns all captured leads, newest first.
	ListLeads(ctx context.Context) ([]*domain.Lead, error)
}

// LeadRepository persists leads. Create assigns the next integer id; ids are
// unique and strictly increasing for the lifetime of the backing store.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id int) error
	// List returns a snapshot ordered by createdAt descending, ties broken by
	// higher id first.
	List(ctx context.Context) ([]*domain.Lead, error)
}

// LeadNotifier forwards an accepted lead to the external automation endpoint.
type LeadNotifier interface {
	Notify(ctx context.Context, lead *domain.Lead) error
}
