package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductRoutes(t *testing.T) (*mockUsecase.MockProximityUsecase, func(method, target, body string) (int, envelope)) {
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	h := NewProductHandler(proximityUC)

	e := newTestEcho()
	e.GET("/products", h.List)
	e.GET("/products/ranking", h.Ranking)
	e.PUT("/products/viewer", h.SetViewer)
	e.DELETE("/products/viewer", h.ClearViewer)

	return proximityUC, func(method, target, body string) (int, envelope) {
		return doRequest(t, e, method, target, body)
	}
}

func ranked(id string, km *float64) *entity.RankedProduct {
	return &entity.RankedProduct{
		Product:    &entity.Product{ID: id, Name: "Tomato " + id, Category: "Vegetables"},
		DistanceKm: km,
	}
}

func decodeProducts(t *testing.T, env envelope) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestProductHandler_ListBindsFilter(t *testing.T) {
	proximityUC, call := newProductRoutes(t)

	near := 2.345
	proximityUC.EXPECT().
		Refresh(mock.Anything, usecase.ProductFilter{Category: "Vegetables", Query: "tom"}).
		Return([]*entity.RankedProduct{ranked("p-1", &near), ranked("p-2", nil)}, nil)

	code, env := call(http.MethodGet, "/products?category=Vegetables&q=tom", "")
	require.Equal(t, http.StatusOK, code)

	products := decodeProducts(t, env)
	require.Len(t, products, 2)
	assert.Equal(t, "p-1", products[0]["id"])
	assert.Equal(t, "2.3 km away", products[0]["distanceLabel"])
	assert.InDelta(t, near, products[0]["distanceKm"], 1e-9)
	assert.NotContains(t, products[1], "distanceKm")
	assert.NotContains(t, products[1], "distanceLabel")
}

func TestProductHandler_ListFailure(t *testing.T) {
	proximityUC, call := newProductRoutes(t)
	proximityUC.EXPECT().Refresh(mock.Anything, usecase.ProductFilter{}).
		Return(nil, domainerrors.NewNetworkError(assert.AnError, "GET /api/v1/products"))

	code, env := call(http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "NETWORK_ERROR", env.Error.Code)
}

func TestProductHandler_Ranking(t *testing.T) {
	proximityUC, call := newProductRoutes(t)
	proximityUC.EXPECT().Ranking().Return(nil)

	code, env := call(http.MethodGet, "/products/ranking", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decodeProducts(t, env))
}

func TestProductHandler_SetViewer(t *testing.T) {
	proximityUC, call := newProductRoutes(t)

	proximityUC.EXPECT().
		SetViewer(mock.MatchedBy(func(c *entity.Coordinate) bool {
			return c != nil && c.Lat == 0 && c.Lng == 85.324
		})).
		Return([]*entity.RankedProduct{ranked("p-1", nil)})

	code, _ := call(http.MethodPut, "/products/viewer", `{"latitude":0,"longitude":85.324}`)
	assert.Equal(t, http.StatusOK, code)
}

func TestProductHandler_SetViewerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing latitude", body: `{"longitude":85.3}`},
		{name: "latitude out of range", body: `{"latitude":91,"longitude":85.3}`},
		{name: "longitude out of range", body: `{"latitude":27.7,"longitude":-181}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, call := newProductRoutes(t)

			code, env := call(http.MethodPut, "/products/viewer", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestProductHandler_ClearViewer(t *testing.T) {
	proximityUC, call := newProductRoutes(t)
	proximityUC.EXPECT().SetViewer((*entity.Coordinate)(nil)).Return([]*entity.RankedProduct{ranked("p-1", nil)})

	code, env := call(http.MethodDelete, "/products/viewer", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeProducts(t, env), 1)
}
