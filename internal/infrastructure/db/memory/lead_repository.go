// Package memory holds the default in-process repositories. State lives only
// for the lifetime of the process; this is a product decision, not a gap.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/amk-marketing/landing-api/internal/core/domain"
)

// LeadRepository is a mutex-guarded map keyed by an auto-incrementing id.
// The map is never exposed; callers only see cloned records.
type LeadRepository struct {
	mu     sync.Mutex
	leads  map[int]*domain.Lead
	nextID int
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{
		leads:  make(map[int]*domain.Lead),
		nextID: 1,
	}
}

// Create assigns the next id and stores a clone of the lead. The id counter
// and map are updated under one lock so concurrent submissions never share an
// id and no write is lost.
func (r *LeadRepository) Create(_ context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead.ID = r.nextID
	r.nextID++

	clone := *lead
	r.leads[lead.ID] = &clone
	return nil
}

// Delete removes a stored lead. Used only to compensate a failed relay; the
// id is not reused.
func (r *LeadRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[id]; !ok {
		return domain.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

// List returns a snapshot of all leads ordered by createdAt descending, ties
// broken by higher id first. Writers are not blocked once the copy is taken.
func (r *LeadRepository) List(_ context.Context) ([]*domain.Lead, error) {
	r.mu.Lock()
	out := make([]*domain.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		clone := *lead
		out = append(out, &clone)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
