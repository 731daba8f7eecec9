package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"courier-app/internal/config"
	"courier-app/internal/jobs"
	"courier-app/internal/logx"
	orderstate "courier-app/internal/state/orders"
	"courier-app/internal/state/session"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		API: config.API{
			BaseURL:         "http://localhost:5000/api/delivery",
			ResourceBaseURL: "http://localhost:5000/api",
			Timeout:         15 * time.Second,
		},
		StateDir: t.TempDir(),
		Tracking: config.Tracking{Interval: 30 * time.Second},
		Diag:     config.Diag{Port: 6060},
	}
}

func setupTestContainer(t *testing.T) *dig.Container {
	t.Helper()

	c := dig.New()

	cfg := testConfig(t)
	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", func() logx.Logger { return logx.Nop() }},
		{"config", func() *config.Config { return cfg }},
	}
	for _, p := range providers {
		err := c.Provide(p.provider)
		require.NoErrorf(t, err, "provide %s", p.name)
	}

	require.NoError(t, provideNamed(c, "gateway_requests_total", countersByName["gateway_requests_total"]))
	require.NoError(t, provideNamed(c, "gateway_timeouts_total", countersByName["gateway_timeouts_total"]))
	require.NoError(t, provideNamed(c, "auth_evictions_total", countersByName["auth_evictions_total"]))
	require.NoError(t, provideNamed(c, "location_updates_total", countersByName["location_updates_total"]))
	require.NoError(t, c.Provide(newRegistry))

	require.NoError(t, registerGateway(c))
	require.NoError(t, registerService(c))
	require.NoError(t, registerState(c))
	require.NoError(t, registerJobs(c))
	require.NoError(t, registerHTTP(c))

	return c
}

func TestContainer_ResolvesApplicationGraph(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t)

	err := c.Invoke(func(
		srv *http.Server,
		sess *session.Store,
		orders *orderstate.Store,
		job *jobs.TrackingJob,
	) {
		require.NotNil(t, srv)
		require.Equal(t, ":6060", srv.Addr)
		require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
		require.NotNil(t, sess)
		require.NotNil(t, orders)
		require.NotNil(t, job)
	})
	require.NoError(t, err)
}

func TestContainer_WorkerGraphHasNoServer(t *testing.T) {
	t.Parallel()

	c := dig.New()
	cfg := testConfig(t)
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(func() logx.Logger { return logx.Nop() }))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))
	require.NoError(t, provideNamed(c, "gateway_requests_total", countersByName["gateway_requests_total"]))
	require.NoError(t, provideNamed(c, "gateway_timeouts_total", countersByName["gateway_timeouts_total"]))
	require.NoError(t, provideNamed(c, "auth_evictions_total", countersByName["auth_evictions_total"]))
	require.NoError(t, provideNamed(c, "location_updates_total", countersByName["location_updates_total"]))
	require.NoError(t, registerGateway(c))
	require.NoError(t, registerService(c))
	require.NoError(t, registerState(c))
	require.NoError(t, registerJobs(c))

	require.NoError(t, c.Invoke(func(job *jobs.TrackingJob) {
		require.NotNil(t, job)
	}))
	require.Error(t, c.Invoke(func(srv *http.Server) { _ = srv }))
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_InvalidProvider(t *testing.T) {
	t.Parallel()

	c := dig.New()

	type bad struct{}
	err := provideAll(c, bad{})
	require.Error(t, err)
}

func TestContainerBuilder_Build_Success(t *testing.T) {
	t.Parallel()

	c, err := NewContainerBuilder().build(context.Background())
	require.NoError(t, err)
	require.NotNil(t, c)

	require.NoError(t, c.Invoke(func(logger logx.Logger) {
		require.NotNil(t, logger)
	}))
}

func TestContainerBuilder_MustBuild_LogsFatalOnError(t *testing.T) {
	t.Parallel()

	builder := NewContainerBuilder().
		WithLogFatalf(func(format string, args ...interface{}) {
			require.FailNowf(t, "logFatalf must not be called", format, args...)
		})

	c := builder.MustBuild(context.Background())
	require.NotNil(t, c)
}
