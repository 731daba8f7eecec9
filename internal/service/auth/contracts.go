package auth

import (
	"context"

	"courier-app/internal/gateway"
)

// gatewayClient defines the gateway operations required by the auth service.
type gatewayClient interface {
	Post(ctx context.Context, path string, body any, includeAuth bool) (gateway.Result, error)
}

// tokenSaver is the token-store slice the auth service writes through.
type tokenSaver interface {
	Save(token string)
	Clear()
}
