package domain

import (
	"errors"
	"time"
)

var (
	// ErrLeadNotFound is returned when a lead id does not exist in the store.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrWebhookFailed marks a relay delivery that did not reach the
	// automation endpoint with a 2xx response.
	ErrWebhookFailed = errors.New("webhook delivery failed")
	// ErrContentUpstream marks a generative API call that failed or returned
	// an unusable payload.
	ErrContentUpstream = errors.New("content generation upstream failed")
	// ErrMissingTopicOrTone is returned when a generation request lacks the
	// two mandatory prompt fields.
	ErrMissingTopicOrTone = errors.New("topic and tone are required")
)

// Lead is a demo request captured from the landing page form.
//
// The id is assigned by the repository, is unique and strictly increasing
// within a process lifetime, and never changes afterwards. A lead is written
// exactly once; there are no update operations.
type Lead struct {
	ID               int       `json:"id" bson:"id"`
	FullName         string    `json:"fullName" bson:"full_name"`
	Phone            string    `json:"phone" bson:"phone"`
	Email            string    `json:"email" bson:"email"`
	Organization     string    `json:"organization" bson:"organization"`
	OrganizationType *string   `json:"organizationType" bson:"organization_type,omitempty"`
	Requirements     *string   `json:"requirements" bson:"requirements,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
}

// RequirementsOrEmpty returns the free-text requirements, or "" when unset.
func (l *Lead) RequirementsOrEmpty() string {
	if l.Requirements == nil {
		return ""
	}
	return *l.Requirements
}
