package domain

import (
	"fmt"

	"courier-app/internal/apperr"
)

// Location is a geographic coordinate pair reported by the courier device.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinates are within the valid geographic
// range. It is a client-side guard: out-of-range values must never
// reach the wire.
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: invalid latitude, must be between -90 and 90", apperr.Invalid)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: invalid longitude, must be between -180 and 180", apperr.Invalid)
	}
	return nil
}
