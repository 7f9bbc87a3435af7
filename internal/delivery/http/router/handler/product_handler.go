package handler

import (
	"net/http"

	"harvest/internal/delivery/http/response"
	"harvest/internal/domain/entity"
	"harvest/internal/errors"
	"harvest/internal/geo"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductHandler serves the proximity-ranked product listing.
type ProductHandler struct {
	proximityUC usecase.ProximityUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(proximityUC usecase.ProximityUsecase) *ProductHandler {
	return &ProductHandler{proximityUC: proximityUC}
}

// SetViewerRequest is an explicit viewer position.
type SetViewerRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// RankedProductResponse adds the rendered distance label to a ranked product.
type RankedProductResponse struct {
	*entity.RankedProduct
	DistanceLabel string `json:"distanceLabel,omitempty"`
}

func toProductResponses(ranked []*entity.RankedProduct) []*RankedProductResponse {
	out := make([]*RankedProductResponse, 0, len(ranked))
	for _, p := range ranked {
		resp := &RankedProductResponse{RankedProduct: p}
		if p.HasDistance() {
			resp.DistanceLabel = geo.FormatDistance(*p.DistanceKm)
		}
		out = append(out, resp)
	}

	return out
}

// List handles GET /products. It reloads the catalogue and ranks it.
func (h *ProductHandler) List(c echo.Context) error {
	var filter usecase.ProductFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "Invalid product filter")
	}

	ranked, err := h.proximityUC.Refresh(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(ranked), "")
}

// Ranking handles GET /products/ranking and returns the last ranking without I/O.
func (h *ProductHandler) Ranking(c echo.Context) error {
	return response.Success(c, http.StatusOK, toProductResponses(h.proximityUC.Ranking()), "")
}

// SetViewer handles PUT /products/viewer.
func (h *ProductHandler) SetViewer(c echo.Context) error {
	var input SetViewerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid viewer input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	viewer := &entity.Coordinate{Lat: *input.Latitude, Lng: *input.Longitude}

	return response.Success(c, http.StatusOK, toProductResponses(h.proximityUC.SetViewer(viewer)), "Viewer updated")
}

// ClearViewer handles DELETE /products/viewer. Products fall back to backend order.
func (h *ProductHandler) ClearViewer(c echo.Context) error {
	return response.Success(c, http.StatusOK, toProductResponses(h.proximityUC.SetViewer(nil)), "Viewer cleared")
}
