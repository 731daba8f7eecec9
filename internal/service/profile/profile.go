package profile

import (
	"context"

	"courier-app/internal/domain"
	"courier-app/internal/gateway"
	"courier-app/internal/logx"
)

// gatewayClient defines the gateway operations required by the profile service.
type gatewayClient interface {
	Get(ctx context.Context, path string, includeAuth bool) (gateway.Result, error)
	Put(ctx context.Context, path string, body any, includeAuth bool) (gateway.Result, error)
}

// Service is the typed façade over the courier profile resource family.
type Service struct {
	gw     gatewayClient
	logger logx.Logger
}

// NewService creates a profile Service.
func NewService(gw gatewayClient, logger logx.Logger) *Service {
	if gw == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{gw: gw, logger: logger}
}

type availabilityBody struct {
	Availability domain.Availability `json:"availability"`
}

// Get fetches the full courier profile.
func (s *Service) Get(ctx context.Context) (gateway.Typed[domain.Profile], error) {
	res, err := s.gw.Get(ctx, "/me", true)
	if err != nil {
		return gateway.Typed[domain.Profile]{}, err
	}
	return gateway.As[domain.Profile](res), nil
}

// UpdateAvailability sets the courier's availability. The server's
// returned courier object is authoritative; callers replace their
// copy wholesale with it.
func (s *Service) UpdateAvailability(ctx context.Context, availability domain.Availability) (gateway.Typed[domain.Courier], error) {
	if !availability.Valid() {
		return gateway.Failure[domain.Courier]("Invalid availability status"), nil
	}
	res, err := s.gw.Put(ctx, "/availability", availabilityBody{Availability: availability}, true)
	if err != nil {
		return gateway.Typed[domain.Courier]{}, err
	}
	return gateway.As[domain.Courier](res), nil
}

// UpdateLocation reports the courier's position. Coordinates are
// validated locally first: out-of-range values fail without issuing
// any network call.
func (s *Service) UpdateLocation(ctx context.Context, loc domain.Location) (gateway.Typed[domain.Courier], error) {
	if err := loc.Validate(); err != nil {
		s.logger.Debug("profile: rejected coordinates",
			logx.Float64("latitude", loc.Latitude),
			logx.Float64("longitude", loc.Longitude),
		)
		return gateway.Failure[domain.Courier](err.Error()), nil
	}
	res, err := s.gw.Put(ctx, "/location", loc, true)
	if err != nil {
		return gateway.Typed[domain.Courier]{}, err
	}
	return gateway.As[domain.Courier](res), nil
}

// Stats fetches the courier's delivery statistics snapshot.
func (s *Service) Stats(ctx context.Context) (gateway.Typed[domain.Stats], error) {
	res, err := s.gw.Get(ctx, "/stats", true)
	if err != nil {
		return gateway.Typed[domain.Stats]{}, err
	}
	return gateway.As[domain.Stats](res), nil
}
