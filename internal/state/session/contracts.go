package session

import (
	"context"

	"courier-app/internal/domain"
	"courier-app/internal/gateway"
)

// authService defines the auth operations required by the session store.
type authService interface {
	Login(ctx context.Context, req domain.LoginRequest) (gateway.Typed[domain.Courier], error)
	Register(ctx context.Context, req domain.RegisterRequest) (gateway.Typed[domain.Courier], error)
	Logout(ctx context.Context) (gateway.Typed[struct{}], error)
}

// profileService defines the profile operations required by the session store.
type profileService interface {
	Get(ctx context.Context) (gateway.Typed[domain.Profile], error)
	UpdateAvailability(ctx context.Context, availability domain.Availability) (gateway.Typed[domain.Courier], error)
	UpdateLocation(ctx context.Context, loc domain.Location) (gateway.Typed[domain.Courier], error)
}

// tokenStore is the token-store slice owned by the session lifecycle.
type tokenStore interface {
	Initialize()
	Current() string
	Clear()
}
