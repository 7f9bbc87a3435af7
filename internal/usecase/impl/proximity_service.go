package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/geo"
	"harvest/internal/usecase"

	"go.uber.org/fx"
)

// proximityService implements the ProximityUsecase interface.
type proximityService struct {
	source   service.ProductSource
	location service.LocationProvider
	logger   *slog.Logger

	mu       sync.RWMutex
	// viewer is the last coordinate posted through SetViewer; provider fixes are never kept.
	viewer   *entity.Coordinate
	products []*entity.Product
	ranking  []*entity.RankedProduct
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	ProductSource    service.ProductSource
	LocationProvider service.LocationProvider
	Logger           *slog.Logger
}

// NewProximityService is the constructor for proximityService.
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		source:   params.ProductSource,
		location: params.LocationProvider,
		logger:   params.Logger,
	}
}

// Refresh fetches and filters products, then ranks them from the current viewer location.
// When the location cannot be acquired the viewer posted through SetViewer is used, or none at all.
func (s *proximityService) Refresh(ctx context.Context, filter usecase.ProductFilter) ([]*entity.RankedProduct, error) {
	products, err := s.source.ListProducts(ctx)
	if err != nil {
		s.logger.Warn("[Proximity] Failed to fetch products, keeping previous ranking", slog.Any("error", err))

		return nil, err
	}

	products = filterProducts(products, filter)
	viewer := s.acquireViewer(ctx)
	ranking := geo.RankByProximity(viewer, products)

	s.mu.Lock()
	s.products = products
	s.ranking = ranking
	s.mu.Unlock()

	s.logger.Debug("[Proximity] Ranking refreshed",
		slog.Int("products", len(ranking)),
		slog.Bool("has_viewer", viewer != nil),
	)

	return slices.Clone(ranking), nil
}

func (s *proximityService) acquireViewer(ctx context.Context) *entity.Coordinate {
	coord, err := s.location.CurrentLocation(ctx)
	if err == nil && coord != nil && coord.Valid() {
		return coord
	}

	switch {
	case err == nil:
		s.logger.Warn("[Proximity] Location provider returned an invalid coordinate")
	case errors.Is(err, domainerrors.ErrLocationUnavailable):
		s.logger.Info("[Proximity] Location unavailable, ranking without viewer", slog.Any("error", err))
	default:
		s.logger.Warn("[Proximity] Failed to acquire location", slog.Any("error", err))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.viewer
}

// SetViewer replaces the viewer coordinate; nil clears it.
func (s *proximityService) SetViewer(coord *entity.Coordinate) []*entity.RankedProduct {
	if coord != nil && !coord.Valid() {
		coord = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewer = coord
	s.ranking = geo.RankByProximity(coord, s.products)

	return slices.Clone(s.ranking)
}

func (s *proximityService) Ranking() []*entity.RankedProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.ranking)
}

func filterProducts(products []*entity.Product, filter usecase.ProductFilter) []*entity.Product {
	category := strings.TrimSpace(filter.Category)
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		if category != "" && category != constants.CategoryAll && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}
