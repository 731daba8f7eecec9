package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"courier-app/internal/apperr"
	"courier-app/internal/domain"
	testlog "courier-app/internal/testutil"
)

type providerMock struct {
	locationFn func(ctx context.Context) (domain.Location, error)
}

func (m *providerMock) Location(ctx context.Context) (domain.Location, error) {
	return m.locationFn(ctx)
}

type sessionMock struct {
	authenticated bool
	updateOK      bool
	updates       []domain.Location
}

func (m *sessionMock) IsAuthenticated() bool { return m.authenticated }

func (m *sessionMock) UpdateLocation(_ context.Context, latitude, longitude float64) bool {
	m.updates = append(m.updates, domain.Location{Latitude: latitude, Longitude: longitude})
	return m.updateOK
}

type countMock struct{ n int }

func (c *countMock) Inc() { c.n++ }

func TestNewTrackingJob_NilDeps(t *testing.T) {
	t.Parallel()

	require.Nil(t, NewTrackingJob(nil, &sessionMock{}, nil, time.Second, nil))
	require.Nil(t, NewTrackingJob(&providerMock{}, nil, nil, time.Second, nil))
}

func TestTick_SkipsWhenLoggedOut(t *testing.T) {
	t.Parallel()

	provider := &providerMock{
		locationFn: func(context.Context) (domain.Location, error) {
			t.Fatal("position must not be read without a session")
			return domain.Location{}, nil
		},
	}
	session := &sessionMock{authenticated: false}
	j := NewTrackingJob(provider, session, nil, time.Second, nil)

	j.Tick(context.Background())

	require.Empty(t, session.updates)
}

func TestTick_ReportsPosition(t *testing.T) {
	t.Parallel()

	provider := &providerMock{
		locationFn: func(context.Context) (domain.Location, error) {
			return domain.Location{Latitude: 12.97, Longitude: 77.59}, nil
		},
	}
	session := &sessionMock{authenticated: true, updateOK: true}
	counter := &countMock{}
	j := NewTrackingJob(provider, session, counter, time.Second, nil)

	j.Tick(context.Background())

	require.Len(t, session.updates, 1)
	require.InDelta(t, 12.97, session.updates[0].Latitude, 1e-9)
	require.Equal(t, 1, counter.n)
}

func TestTick_RejectedUpdateDoesNotCount(t *testing.T) {
	t.Parallel()

	provider := &providerMock{
		locationFn: func(context.Context) (domain.Location, error) {
			return domain.Location{Latitude: 1, Longitude: 2}, nil
		},
	}
	session := &sessionMock{authenticated: true, updateOK: false}
	counter := &countMock{}
	j := NewTrackingJob(provider, session, counter, time.Second, nil)

	j.Tick(context.Background())

	require.Len(t, session.updates, 1)
	require.Zero(t, counter.n)
}

func TestTick_NoFix(t *testing.T) {
	t.Parallel()

	provider := &providerMock{
		locationFn: func(context.Context) (domain.Location, error) {
			return domain.Location{}, errors.New("no fix")
		},
	}
	session := &sessionMock{authenticated: true, updateOK: true}
	rec := testlog.New()
	j := NewTrackingJob(provider, session, nil, time.Second, rec.Logger())

	j.Tick(context.Background())

	require.Empty(t, session.updates)
	require.True(t, rec.Has("tracking position unavailable"))
}

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	p := NewStaticProvider()

	_, err := p.Location(context.Background())
	require.ErrorIs(t, err, apperr.NotFound)

	require.ErrorIs(t, p.Set(domain.Location{Latitude: 91, Longitude: 0}), apperr.Invalid)

	require.NoError(t, p.Set(domain.Location{Latitude: 12.97, Longitude: 77.59}))
	loc, err := p.Location(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 77.59, loc.Longitude, 1e-9)
}
