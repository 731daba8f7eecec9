package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-app/internal/config"
	"courier-app/internal/gateway"
	"courier-app/internal/http/diagserver"
	"courier-app/internal/jobs"
	"courier-app/internal/logx"
	"courier-app/internal/metrics"
	authsvc "courier-app/internal/service/auth"
	ordersvc "courier-app/internal/service/orders"
	profilesvc "courier-app/internal/service/profile"
	orderstate "courier-app/internal/state/orders"
	"courier-app/internal/state/session"
	"courier-app/internal/token"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
	withHTTP  bool
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		logFatalf: log.Fatalf,
		withHTTP:  true,
	}
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// WithoutHTTP skips the diagnostics server registration.
func (b *ContainerBuilder) WithoutHTTP() *ContainerBuilder {
	b.withHTTP = false
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerState(container); err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}
	if err := registerJobs(container); err != nil {
		return nil, fmt.Errorf("jobs: %w", err)
	}
	if b.withHTTP {
		if err := registerHTTP(container); err != nil {
			return nil, fmt.Errorf("http: %w", err)
		}
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the container for the tracker
// binary, without the diagnostics server.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().WithoutHTTP().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func provideNamed(container *dig.Container, name string, provider any) error {
	if err := container.Provide(provider, dig.Name(name)); err != nil {
		return fmt.Errorf("provide %s: %w", name, err)
	}
	return nil
}

type countersIn struct {
	dig.In
	Requests        prometheus.Counter `name:"gateway_requests_total"`
	Timeouts        prometheus.Counter `name:"gateway_timeouts_total"`
	AuthEvictions   prometheus.Counter `name:"auth_evictions_total"`
	LocationUpdates prometheus.Counter `name:"location_updates_total"`
}

func newRegistry(in countersIn) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for name, c := range map[string]prometheus.Counter{
		"gateway_requests_total": in.Requests,
		"gateway_timeouts_total": in.Timeouts,
		"auth_evictions_total":   in.AuthEvictions,
		"location_updates_total": in.LocationUpdates,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}
	return reg, nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	if err := provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		newRegistry,
	); err != nil {
		return err
	}
	for name, provider := range countersByName {
		if err := provideNamed(container, name, provider); err != nil {
			return err
		}
	}
	return nil
}

var countersByName = map[string]any{
	"gateway_requests_total": metrics.NewGatewayRequestsTotal,
	"gateway_timeouts_total": metrics.NewGatewayTimeoutsTotal,
	"auth_evictions_total":   metrics.NewAuthEvictionsTotal,
	"location_updates_total": metrics.NewLocationUpdatesTotal,
}

type gatewayIn struct {
	dig.In
	Config        *config.Config
	Tokens        *token.Store
	Logger        logx.Logger
	Requests      prometheus.Counter `name:"gateway_requests_total"`
	Timeouts      prometheus.Counter `name:"gateway_timeouts_total"`
	AuthEvictions prometheus.Counter `name:"auth_evictions_total"`
}

func registerGateway(container *dig.Container) error {
	if err := provideAll(container,
		func(cfg *config.Config, logger logx.Logger) *token.Store {
			return token.NewStore(cfg.StateDir, logger)
		},
	); err != nil {
		return err
	}

	newClient := func(in gatewayIn, baseURL string) *gateway.Client {
		return gateway.NewClient(gateway.Config{
			BaseURL: baseURL,
			Timeout: in.Config.API.Timeout,
		}, in.Tokens, in.Logger, gateway.Counters{
			Requests:      in.Requests,
			Timeouts:      in.Timeouts,
			AuthEvictions: in.AuthEvictions,
		})
	}
	if err := provideNamed(container, "courier_gateway", func(in gatewayIn) *gateway.Client {
		return newClient(in, in.Config.API.BaseURL)
	}); err != nil {
		return err
	}
	return provideNamed(container, "resource_gateway", func(in gatewayIn) *gateway.Client {
		return newClient(in, in.Config.API.ResourceBaseURL)
	})
}

type servicesIn struct {
	dig.In
	Courier  *gateway.Client `name:"courier_gateway"`
	Resource *gateway.Client `name:"resource_gateway"`
	Tokens   *token.Store
	Logger   logx.Logger
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(in servicesIn) *authsvc.Service {
			return authsvc.NewService(in.Courier, in.Tokens, in.Logger)
		},
		func(in servicesIn) *profilesvc.Service {
			return profilesvc.NewService(in.Courier, in.Logger)
		},
		func(in servicesIn) *ordersvc.Service {
			return ordersvc.NewService(in.Courier, in.Resource, in.Logger)
		},
	)
}

func registerState(container *dig.Container) error {
	return provideAll(container,
		func(auth *authsvc.Service, profile *profilesvc.Service, tokens *token.Store, logger logx.Logger) *session.Store {
			return session.NewStore(auth, profile, tokens, logger)
		},
		func(orders *ordersvc.Service, profile *profilesvc.Service, logger logx.Logger) *orderstate.Store {
			return orderstate.NewStore(orders, profile, logger)
		},
	)
}

type trackingIn struct {
	dig.In
	Provider jobs.LocationProvider
	Session  *session.Store
	Config   *config.Config
	Logger   logx.Logger
	Counter  prometheus.Counter `name:"location_updates_total"`
}

func registerJobs(container *dig.Container) error {
	return provideAll(container,
		func() jobs.LocationProvider { return jobs.NewStaticProvider() },
		func(in trackingIn) *jobs.TrackingJob {
			return jobs.NewTrackingJob(in.Provider, in.Session, in.Counter, in.Config.Tracking.Interval, in.Logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, reg *prometheus.Registry) http.Handler {
			return diagserver.Handler(diagserver.Config{
				User: cfg.Diag.PprofUser,
				Pass: cfg.Diag.PprofPass,
			}, reg)
		},
		func(cfg *config.Config, h http.Handler) *http.Server {
			return diagserver.NewServer(fmt.Sprintf(":%d", cfg.Diag.Port), h)
		},
	)
}
