package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// ProductSource provides the ordered list of marketplace products
type ProductSource interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
