package diagserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"courier-app/internal/metrics"
)

func newRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	c := metrics.NewGatewayRequestsTotal()
	require.NoError(t, reg.Register(c))
	c.Inc()
	return reg
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	h := Handler(Config{}, newRegistry(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestHandler_MetricsExposesCounters(t *testing.T) {
	t.Parallel()

	h := Handler(Config{}, newRegistry(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "gateway_requests_total 1")
}

func TestHandler_PprofLoopbackAllowed(t *testing.T) {
	t.Parallel()

	h := Handler(Config{}, newRegistry(t))

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_PprofRemoteWithoutCredsRejected(t *testing.T) {
	t.Parallel()

	h := Handler(Config{}, newRegistry(t))

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil)
	req.RemoteAddr = "10.1.2.3:54321"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_PprofRemoteBasicAuth(t *testing.T) {
	t.Parallel()

	h := Handler(Config{User: "ops", Pass: "secret"}, newRegistry(t))

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil)
	req.RemoteAddr = "10.1.2.3:54321"
	req.SetBasicAuth("ops", "wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req.SetBasicAuth("ops", "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
