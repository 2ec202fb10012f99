package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/amk-marketing/landing-api/internal/api/metrics"
	"github.com/amk-marketing/landing-api/internal/core/domain"
	"github.com/amk-marketing/landing-api/internal/core/ports"
)

// LeadService implements lead submission and listing on top of a repository
// and the automation webhook notifier.
type LeadService struct {
	repo     ports.LeadRepository
	notifier ports.LeadNotifier
	logger   zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, notifier ports.LeadNotifier, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, notifier: notifier, logger: logger}
}

// SubmitLead stores the lead, then relays it to the automation endpoint as
// two explicit steps. A relay failure rolls the stored record back so a lead
// is never observable in the list without having been relayed.
func (s *LeadService) SubmitLead(ctx context.Context, input ports.SubmitLeadInput) (*ports.SubmitLeadResult, error) {
	lead := &domain.Lead{
		FullName:         input.FullName,
		Phone:            input.Phone,
		Email:            input.Email,
		Organization:     input.Organization,
		OrganizationType: optional(input.OrganizationType),
		Requirements:     optional(input.Requirements),
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		s.logger.Error().Err(err).Msg("failed to store lead")
		return nil, fmt.Errorf("store lead: %w", err)
	}

	if err := s.notifier.Notify(ctx, lead); err != nil {
		s.logger.Error().Err(err).Int("lead_id", lead.ID).Msg("webhook relay failed, rolling back lead")
		if delErr := s.repo.Delete(ctx, lead.ID); delErr != nil {
			s.logger.Error().Err(delErr).Int("lead_id", lead.ID).Msg("rollback delete failed")
		}
		return nil, fmt.Errorf("relay lead %d: %w", lead.ID, err)
	}

	metrics.LeadsCreatedTotal.Inc()
	s.logger.Info().Int("lead_id", lead.ID).Str("phone", lead.Phone).Msg("lead accepted")

	return &ports.SubmitLeadResult{ID: lead.ID, CreatedAt: lead.CreatedAt}, nil
}

// ListLeads returns every captured lead, newest first.
func (s *LeadService) ListLeads(ctx context.Context) ([]*domain.Lead, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list leads")
		return nil, err
	}
	return leads, nil
}

// optional maps a blank form field to nil so it serializes as JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
