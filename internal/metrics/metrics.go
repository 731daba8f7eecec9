package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewGatewayRequestsTotal returns a Prometheus counter for the number of API gateway requests issued
func NewGatewayRequestsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_requests_total",
		Help: "Total number of API gateway requests issued",
	})
}

// NewGatewayTimeoutsTotal returns a Prometheus counter for the number of API gateway requests that timed out
func NewGatewayTimeoutsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_timeouts_total",
		Help: "Total number of API gateway requests that timed out",
	})
}

// NewAuthEvictionsTotal returns a Prometheus counter for the number of stored credentials evicted after a 401 response
func NewAuthEvictionsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auth_evictions_total",
		Help: "Total number of stored credentials evicted after a 401 response",
	})
}

// NewLocationUpdatesTotal returns a Prometheus counter for the number of location updates reported by the tracker
func NewLocationUpdatesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "location_updates_total",
		Help: "Total number of location updates reported by the tracker",
	})
}
