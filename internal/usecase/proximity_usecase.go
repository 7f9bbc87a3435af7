package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// ProductFilter narrows the product list before ranking.
type ProductFilter struct {
	// Category keeps products of a single category; empty or "All" keeps everything
	Category string `json:"category" query:"category"`
	// Query is a case-insensitive substring matched against name and description
	Query string `json:"q" query:"q"`
}

// ProximityUsecase ranks marketplace products by distance from the viewer.
type ProximityUsecase interface {
	// Refresh fetches products, acquires the viewer location and ranks the result.
	Refresh(ctx context.Context, filter ProductFilter) ([]*entity.RankedProduct, error)
	// SetViewer replaces the viewer coordinate and re-ranks the cached products.
	SetViewer(coord *entity.Coordinate) []*entity.RankedProduct
	// Ranking returns the last computed ranking.
	Ranking() []*entity.RankedProduct
}
