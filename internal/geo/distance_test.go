package geo

import (
	"math"
	"testing"

	"harvest/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
)

var (
	kathmandu = entity.Coordinate{Lat: 27.7172, Lng: 85.3240}
	bhaktapur = entity.Coordinate{Lat: 27.6710, Lng: 85.4298}
	pokhara   = entity.Coordinate{Lat: 28.2096, Lng: 83.9856}
	taipei101 = entity.Coordinate{Lat: 25.0330, Lng: 121.5654}
)

func TestComputeDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]entity.Coordinate{
		{kathmandu, bhaktapur},
		{kathmandu, pokhara},
		{pokhara, taipei101},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 51.5074, Lng: -0.1278}},
	}

	for _, pair := range pairs {
		ab := ComputeDistanceKm(pair[0], pair[1])
		ba := ComputeDistanceKm(pair[1], pair[0])

		assert.InEpsilon(t, ab, ba, 1e-9)
		assert.Greater(t, ab, 0.0)
	}
}

func TestComputeDistanceKm_Identity(t *testing.T) {
	for _, c := range []entity.Coordinate{kathmandu, pokhara, taipei101, {}} {
		assert.Equal(t, 0.0, ComputeDistanceKm(c, c))
	}
}

func TestComputeDistanceKm_KnownValue(t *testing.T) {
	d := ComputeDistanceKm(kathmandu, bhaktapur)

	assert.GreaterOrEqual(t, d, 11.0)
	assert.LessOrEqual(t, d, 13.0)
}

func TestComputeDistanceKm_MatchesOrbHaversine(t *testing.T) {
	// orb uses a different earth radius in meters, so compare after rescaling.
	scale := EarthRadiusKm * 1000 / orb.EarthRadius

	for _, target := range []entity.Coordinate{bhaktapur, pokhara, taipei101} {
		want := orbgeo.DistanceHaversine(kathmandu.Point(), target.Point()) * scale / 1000
		got := ComputeDistanceKm(kathmandu, target)

		assert.InEpsilon(t, want, got, 1e-9)
	}
}

func TestComputeDistanceKm_Antipodal(t *testing.T) {
	d := ComputeDistanceKm(entity.Coordinate{Lat: 0, Lng: 0}, entity.Coordinate{Lat: 0, Lng: 180})

	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "11.6 km away", FormatDistance(11.64))
	assert.Equal(t, "0.0 km away", FormatDistance(0))
}
