// Package location provides the viewer geolocation providers.
package location

import (
	"context"
	"log/slog"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// staticProvider always reports the configured coordinate.
type staticProvider struct {
	coord entity.Coordinate
}

func (p *staticProvider) CurrentLocation(context.Context) (*entity.Coordinate, error) {
	coord := p.coord

	return &coord, nil
}

// unavailableProvider reports that no location can be acquired.
type unavailableProvider struct{}

func (p *unavailableProvider) CurrentLocation(context.Context) (*entity.Coordinate, error) {
	return nil, domainerrors.ErrLocationUnavailable
}

// ProviderParams holds dependencies for LocationProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider creates a LocationProvider based on configuration
func NewProvider(params ProviderParams) (service.LocationProvider, error) {
	cfg := params.Config.Location
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.LocationProviderNone {
		logger.Info("Location provider not configured, proximity ranking needs an explicit viewer")

		return &unavailableProvider{}, nil
	}

	switch cfg.Provider {
	case constants.LocationProviderStatic:
		coord := entity.Coordinate{Lat: cfg.Latitude, Lng: cfg.Longitude}
		if !coord.Valid() {
			return nil, errors.Errorf("invalid static location %v,%v", cfg.Latitude, cfg.Longitude)
		}
		logger.Info("Using static location provider",
			slog.Float64("latitude", coord.Lat),
			slog.Float64("longitude", coord.Lng),
		)

		return &staticProvider{coord: coord}, nil
	default:
		return nil, errors.Errorf("unsupported location provider: %s", cfg.Provider)
	}
}
