package orders

import (
	"context"
	"net/url"

	"courier-app/internal/domain"
	"courier-app/internal/gateway"
	"courier-app/internal/logx"
)

// gatewayClient defines the gateway operations required by the orders service.
type gatewayClient interface {
	Get(ctx context.Context, path string, includeAuth bool) (gateway.Result, error)
	Post(ctx context.Context, path string, body any, includeAuth bool) (gateway.Result, error)
	Put(ctx context.Context, path string, body any, includeAuth bool) (gateway.Result, error)
}

// Service is the typed façade over the order resource families. It
// talks to two bases: the courier-scoped one for list and lifecycle
// operations, and the resource-scoped one for single-order lookup.
// The lookup must work for orders the courier has not claimed yet, so
// the two must not be collapsed into one endpoint.
type Service struct {
	courier  gatewayClient
	resource gatewayClient
	logger   logx.Logger
}

// NewService creates an orders Service over the courier-scoped and
// resource-scoped gateways.
func NewService(courier, resource gatewayClient, logger logx.Logger) *Service {
	if courier == nil || resource == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{courier: courier, resource: resource, logger: logger}
}

// progressBody and deliveredBody are the fixed request shapes for
// lifecycle transitions. Absent notes/otp serialize as empty strings,
// never omitted.
type progressBody struct {
	Notes string `json:"notes"`
}

type deliveredBody struct {
	Notes string `json:"notes"`
	OTP   string `json:"otp"`
}

// Pending fetches orders visible to all couriers and not yet claimed.
func (s *Service) Pending(ctx context.Context) (gateway.Typed[[]domain.Order], error) {
	res, err := s.courier.Get(ctx, "/orders/pending", true)
	if err != nil {
		return gateway.Typed[[]domain.Order]{}, err
	}
	return gateway.As[[]domain.Order](res), nil
}

// Assigned fetches orders claimed by the current courier and not yet
// delivered.
func (s *Service) Assigned(ctx context.Context) (gateway.Typed[[]domain.Order], error) {
	res, err := s.courier.Get(ctx, "/orders/assigned", true)
	if err != nil {
		return gateway.Typed[[]domain.Order]{}, err
	}
	return gateway.As[[]domain.Order](res), nil
}

// Accept claims a pending order for the current courier. The returned
// order is the server's authoritative copy.
func (s *Service) Accept(ctx context.Context, orderID string) (gateway.Typed[domain.Order], error) {
	res, err := s.courier.Post(ctx, "/orders/"+url.PathEscape(orderID)+"/accept", nil, true)
	if err != nil {
		return gateway.Typed[domain.Order]{}, err
	}
	return gateway.As[domain.Order](res), nil
}

// MarkOutForDelivery transitions an assigned order to out-for-delivery.
func (s *Service) MarkOutForDelivery(ctx context.Context, orderID, notes string) (gateway.Typed[domain.Order], error) {
	res, err := s.courier.Put(ctx, "/orders/"+url.PathEscape(orderID)+"/out-for-delivery", progressBody{Notes: notes}, true)
	if err != nil {
		return gateway.Typed[domain.Order]{}, err
	}
	return gateway.As[domain.Order](res), nil
}

// MarkDelivered completes an assigned order. Both notes and otp are
// always present in the body, empty when not provided.
func (s *Service) MarkDelivered(ctx context.Context, orderID, notes, otp string) (gateway.Typed[domain.Order], error) {
	res, err := s.courier.Put(ctx, "/orders/"+url.PathEscape(orderID)+"/delivered", deliveredBody{Notes: notes, OTP: otp}, true)
	if err != nil {
		return gateway.Typed[domain.Order]{}, err
	}
	return gateway.As[domain.Order](res), nil
}

// Details fetches a single order through the resource-scoped base, so
// the detail view works for orders not yet claimed by this courier.
func (s *Service) Details(ctx context.Context, orderID string) (gateway.Typed[domain.Order], error) {
	res, err := s.resource.Get(ctx, "/orders/"+url.PathEscape(orderID), true)
	if err != nil {
		return gateway.Typed[domain.Order]{}, err
	}
	return gateway.As[domain.Order](res), nil
}
