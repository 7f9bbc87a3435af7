package location

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"harvest/config"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParams(cfg *config.LocationConfig) ProviderParams {
	return ProviderParams{
		Config: &config.Config{Location: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewProvider_Static(t *testing.T) {
	provider, err := NewProvider(newParams(&config.LocationConfig{Provider: "static", Latitude: 27.7172, Longitude: 85.3240}))
	require.NoError(t, err)

	coord, err := provider.CurrentLocation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 27.7172, coord.Lat)
	assert.Equal(t, 85.3240, coord.Lng)
}

func TestNewProvider_Unavailable(t *testing.T) {
	for _, cfg := range []*config.LocationConfig{nil, {}, {Provider: "none"}} {
		provider, err := NewProvider(newParams(cfg))
		require.NoError(t, err)

		_, err = provider.CurrentLocation(context.Background())
		assert.True(t, errors.Is(err, domainerrors.ErrLocationUnavailable))
	}
}

func TestNewProvider_Invalid(t *testing.T) {
	_, err := NewProvider(newParams(&config.LocationConfig{Provider: "static", Latitude: 120}))
	assert.Error(t, err)

	_, err = NewProvider(newParams(&config.LocationConfig{Provider: "gps"}))
	assert.Error(t, err)
}
