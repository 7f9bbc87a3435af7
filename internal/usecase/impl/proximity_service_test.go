package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/errors"
	mockService "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var kathmandu = entity.Coordinate{Lat: 27.7172, Lng: 85.3240}

func newProximityFixture(t *testing.T) (usecase.ProximityUsecase, *mockService.MockProductSource, *mockService.MockLocationProvider) {
	t.Helper()

	source := mockService.NewMockProductSource(t)
	location := mockService.NewMockLocationProvider(t)
	svc := NewProximityService(ProximityServiceParams{
		ProductSource:    source,
		LocationProvider: location,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, source, location
}

func marketProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "p-1", Name: "Organic Tomatoes", Category: "Vegetables", Description: "Vine ripened"},
		{ID: "p-2", Name: "Wild Honey", Category: "Honey", Description: "From the hills",
			Seller: entity.Seller{ID: "s-2", Location: &entity.Coordinate{Lat: 27.6710, Lng: 85.4298}}},
		{ID: "p-3", Name: "Spinach", Category: "Vegetables", Description: "Leafy greens, organic",
			Seller: entity.Seller{ID: "s-3", Location: &entity.Coordinate{Lat: 27.7000, Lng: 85.3300}}},
	}
}

func rankedIDs(ranked []*entity.RankedProduct) []string {
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.ID)
	}

	return out
}

func TestProximityService_RefreshRanksByViewer(t *testing.T) {
	svc, source, location := newProximityFixture(t)
	source.EXPECT().ListProducts(mock.Anything).Return(marketProducts(), nil).Once()
	location.EXPECT().CurrentLocation(mock.Anything).Return(&kathmandu, nil).Once()

	ranked, err := svc.Refresh(context.Background(), usecase.ProductFilter{})

	require.NoError(t, err)
	assert.Equal(t, []string{"p-3", "p-2", "p-1"}, rankedIDs(ranked))
	assert.True(t, ranked[0].HasDistance())
	assert.False(t, ranked[2].HasDistance())
	assert.Equal(t, rankedIDs(ranked), rankedIDs(svc.Ranking()))
}

func TestProximityService_LocationUnavailableDegrades(t *testing.T) {
	svc, source, location := newProximityFixture(t)
	source.EXPECT().ListProducts(mock.Anything).Return(marketProducts(), nil).Once()
	location.EXPECT().CurrentLocation(mock.Anything).Return(nil, domainerrors.ErrLocationUnavailable).Once()

	ranked, err := svc.Refresh(context.Background(), usecase.ProductFilter{Category: "All"})

	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, rankedIDs(ranked))
	for _, r := range ranked {
		assert.False(t, r.HasDistance())
	}
}

func TestProximityService_ProviderFixIsNotReused(t *testing.T) {
	svc, source, location := newProximityFixture(t)
	source.EXPECT().ListProducts(mock.Anything).Return(marketProducts(), nil).Twice()
	location.EXPECT().CurrentLocation(mock.Anything).Return(&kathmandu, nil).Once()
	location.EXPECT().CurrentLocation(mock.Anything).Return(nil, domainerrors.ErrLocationUnavailable).Once()

	_, err := svc.Refresh(context.Background(), usecase.ProductFilter{})
	require.NoError(t, err)

	ranked, err := svc.Refresh(context.Background(), usecase.ProductFilter{})

	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, rankedIDs(ranked))
	assert.False(t, ranked[0].HasDistance())
}

func TestProximityService_PostedViewerSurvivesUnavailableLocation(t *testing.T) {
	svc, source, location := newProximityFixture(t)
	svc.SetViewer(&kathmandu)

	source.EXPECT().ListProducts(mock.Anything).Return(marketProducts(), nil).Once()
	location.EXPECT().CurrentLocation(mock.Anything).Return(nil, domainerrors.ErrLocationUnavailable).Once()

	ranked, err := svc.Refresh(context.Background(), usecase.ProductFilter{})

	require.NoError(t, err)
	assert.Equal(t, []string{"p-3", "p-2", "p-1"}, rankedIDs(ranked))
}

func TestProximityService_RefreshFailureKeepsRanking(t *testing.T) {
	svc, source, location := newProximityFixture(t)
	source.EXPECT().ListProducts(mock.Anything).Return(marketProducts(), nil).Once()
	location.EXPECT().CurrentLocation(mock.Anything).Return(&kathmandu, nil).Once()
	_, err := svc.Refresh(context.Background(), usecase.ProductFilter{})
	require.NoError(t, err)

	source.EXPECT().ListProducts(mock.Anything).
		Return(nil, domainerrors.NewNetworkError(errors.New("refused"), "GET /api/v1/products")).Once()

	_, err = svc.Refresh(context.Background(), usecase.ProductFilter{})

	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	assert.Equal(t, []string{"p-3", "p-2", "p-1"}, rankedIDs(svc.Ranking()))
}

func TestProximityService_Filter(t *testing.T) {
	tests := []struct {
		name   string
		filter usecase.ProductFilter
		want   []string
	}{
		{name: "category", filter: usecase.ProductFilter{Category: "Vegetables"}, want: []string{"p-1", "p-3"}},
		{name: "search name", filter: usecase.ProductFilter{Query: "HONEY"}, want: []string{"p-2"}},
		{name: "search description", filter: usecase.ProductFilter{Query: "organic"}, want: []string{"p-1", "p-3"}},
		{name: "category and search", filter: usecase.ProductFilter{Category: "Vegetables", Query: "greens"}, want: []string{"p-3"}},
		{name: "no match", filter: usecase.ProductFilter{Query: "mango"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterProducts(marketProducts(), tt.filter)

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestProximityService_SetViewerReranksCache(t *testing.T) {
	svc, source, location := newProximityFixture(t)
	source.EXPECT().ListProducts(mock.Anything).Return(marketProducts(), nil).Once()
	location.EXPECT().CurrentLocation(mock.Anything).Return(nil, domainerrors.ErrLocationUnavailable).Once()
	_, err := svc.Refresh(context.Background(), usecase.ProductFilter{})
	require.NoError(t, err)

	bhaktapur := entity.Coordinate{Lat: 27.6710, Lng: 85.4298}
	ranked := svc.SetViewer(&bhaktapur)
	assert.Equal(t, []string{"p-2", "p-3", "p-1"}, rankedIDs(ranked))
	assert.InDelta(t, 0, *ranked[0].DistanceKm, 1e-9)

	// a later refresh without location keeps the explicit viewer
	source.EXPECT().ListProducts(mock.Anything).Return(marketProducts(), nil).Once()
	location.EXPECT().CurrentLocation(mock.Anything).Return(nil, domainerrors.ErrLocationUnavailable).Once()
	ranked, err = svc.Refresh(context.Background(), usecase.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"p-2", "p-3", "p-1"}, rankedIDs(ranked))

	ranked = svc.SetViewer(nil)
	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, rankedIDs(ranked))
}
