package rest

import (
	"context"
	"net/http"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
)

const productsPath = "/api/v1/products"

// productSource implements service.ProductSource. Listings are public so no token is sent.
type productSource struct {
	client *Client
}

// NewProductSource creates the REST product adapter.
func NewProductSource(client *Client) service.ProductSource {
	return &productSource{client: client}
}

func (s *productSource) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*productDTO
	if err := s.client.do(ctx, http.MethodGet, productsPath, "", nil, &products); err != nil {
		return nil, err
	}

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		out = append(out, p.toEntity())
	}

	return out, nil
}
