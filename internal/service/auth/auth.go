package auth

import (
	"context"

	"courier-app/internal/domain"
	"courier-app/internal/gateway"
	"courier-app/internal/logx"
)

// Service is the typed façade over the auth resource family. It owns
// the one coupling the client is built around: a successful login or
// register persists the returned token before the caller sees the
// response, so no caller ever has to remember to do it.
type Service struct {
	gw     gatewayClient
	tokens tokenSaver
	logger logx.Logger
}

// NewService creates an auth Service.
func NewService(gw gatewayClient, tokens tokenSaver, logger logx.Logger) *Service {
	if gw == nil || tokens == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{gw: gw, tokens: tokens, logger: logger}
}

// Login authenticates the courier. On success the returned token is
// saved to the token store as a side effect.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (gateway.Typed[domain.Courier], error) {
	res, err := s.gw.Post(ctx, "/login", req, false)
	if err != nil {
		return gateway.Typed[domain.Courier]{}, err
	}
	s.persistToken(res)
	return gateway.As[domain.Courier](res), nil
}

// Register creates a courier account. Like Login, a returned token is
// persisted before the response is handed back.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (gateway.Typed[domain.Courier], error) {
	res, err := s.gw.Post(ctx, "/register", req, false)
	if err != nil {
		return gateway.Typed[domain.Courier]{}, err
	}
	s.persistToken(res)
	return gateway.As[domain.Courier](res), nil
}

// Logout invalidates the session server-side. The local credential is
// cleared on success; the session store clears local state regardless
// of the outcome here.
func (s *Service) Logout(ctx context.Context) (gateway.Typed[struct{}], error) {
	res, err := s.gw.Post(ctx, "/logout", nil, true)
	if err != nil {
		return gateway.Typed[struct{}]{}, err
	}
	if res.Success {
		s.tokens.Clear()
	}
	return gateway.As[struct{}](res), nil
}

func (s *Service) persistToken(res gateway.Result) {
	if res.Success && res.Token != "" {
		s.tokens.Save(res.Token)
		s.logger.Debug("auth: token persisted")
	}
}
