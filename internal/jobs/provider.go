package jobs

import (
	"context"
	"sync"

	"courier-app/internal/apperr"
	"courier-app/internal/domain"
)

// StaticProvider is a LocationProvider backed by a manually set
// position. The tracker binary feeds it; until the first Set call it
// reports no fix.
type StaticProvider struct {
	mu  sync.Mutex
	loc *domain.Location
}

// NewStaticProvider creates an empty StaticProvider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Set validates and stores the position.
func (p *StaticProvider) Set(loc domain.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	l := loc
	p.loc = &l
	return nil
}

// Location returns the last stored position.
func (p *StaticProvider) Location(context.Context) (domain.Location, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loc == nil {
		return domain.Location{}, apperr.NotFound
	}
	return *p.loc, nil
}
