package domain

import (
	"fmt"
	"math"
	"strings"
)

// Institution is a collaborating organization plotted on the globe (WGS 84).
type Institution struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Validate rejects blank names and coordinates outside [-90, 90] x [-180, 180].
func (i *Institution) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("name: %w", ErrEmptyField)
	}
	if !ValidLatitude(i.Latitude) {
		return fmt.Errorf("latitude %v: %w (must be within [-90, 90])", i.Latitude, ErrCoordinateRange)
	}
	if !ValidLongitude(i.Longitude) {
		return fmt.Errorf("longitude %v: %w (must be within [-180, 180])", i.Longitude, ErrCoordinateRange)
	}
	return nil
}

// ValidLatitude reports whether lat is a finite value in [-90, 90].
func ValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lon is a finite value in [-180, 180].
func ValidLongitude(lon float64) bool {
	return !math.IsNaN(lon) && lon >= -180 && lon <= 180
}
