package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// LocationProvider acquires the viewer coordinate on demand
type LocationProvider interface {
	// CurrentLocation returns the viewer coordinate or ErrLocationUnavailable
	CurrentLocation(ctx context.Context) (*entity.Coordinate, error)
}
