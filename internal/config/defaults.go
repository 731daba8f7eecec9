package config

import "time"

var defaultAPI = API{
	BaseURL:         "http://localhost:5000/api/delivery",
	ResourceBaseURL: "http://localhost:5000/api",
	Timeout:         15 * time.Second,
}

const defaultStateDir = ".courier-app"

var defaultTracking = Tracking{
	Interval: 30 * time.Second,
}

const defaultDiagPort = 6060

// DefaultAPI returns the default API gateway settings.
func DefaultAPI() API {
	return defaultAPI
}

// DefaultStateDir returns the default state directory.
func DefaultStateDir() string {
	return defaultStateDir
}

// DefaultTracking returns the default tracking settings.
func DefaultTracking() Tracking {
	return defaultTracking
}

// DefaultDiagPort returns the default diagnostics port.
func DefaultDiagPort() int {
	return defaultDiagPort
}
