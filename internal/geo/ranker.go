package geo

import (
	"cmp"
	"slices"

	"harvest/internal/domain/entity"
)

// RankByProximity annotates every product whose seller has a valid coordinate
// with its distance from viewer and orders the list nearest first. Products
// without a usable coordinate follow in their original relative order.
//
// A nil or invalid viewer yields the products in their original order with no
// distances. The input slice is never modified.
func RankByProximity(viewer *entity.Coordinate, products []*entity.Product) []*entity.RankedProduct {
	ranked := make([]*entity.RankedProduct, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, &entity.RankedProduct{Product: p})
	}

	if viewer == nil || !viewer.Valid() {
		return ranked
	}

	for _, r := range ranked {
		loc := sellerLocation(r.Product)
		if loc == nil {
			continue
		}

		d := ComputeDistanceKm(*viewer, *loc)
		r.DistanceKm = &d
	}

	slices.SortStableFunc(ranked, compareByDistance)

	return ranked
}

func compareByDistance(a, b *entity.RankedProduct) int {
	switch {
	case a.HasDistance() && b.HasDistance():
		return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
	case a.HasDistance():
		return -1
	case b.HasDistance():
		return 1
	default:
		return 0
	}
}

func sellerLocation(p *entity.Product) *entity.Coordinate {
	if p == nil || p.Seller.Location == nil || !p.Seller.Location.Valid() {
		return nil
	}

	return p.Seller.Location
}
