package proximity

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marcoZero = domain.Point{Lat: -8.0631, Lon: -34.8711}

func testCatalog() []domain.DisposalPoint {
	return []domain.DisposalPoint{
		{ID: "eco-imbiribeira", Category: domain.CategoryEcoponto, Title: "Ecoponto Imbiribeira",
			Lat: -8.1275, Lon: -34.9020, Materials: []string{"Entulho", "Madeira", "Móveis"}},
		{ID: "pev-boa-vista", Category: domain.CategoryReciclagem, Title: "PEV Boa Vista",
			Lat: -8.0630, Lon: -34.8890, Materials: []string{"Papel", "Plástico", "Vidro"}},
		{ID: "eco-torre", Category: domain.CategoryEcoponto, Title: "Ecoponto Torre",
			Lat: -8.0455, Lon: -34.9105, Materials: []string{"Entulho", "Eletrônicos"}},
		{ID: "pev-espinheiro", Category: domain.CategoryReciclagem, Title: "PEV Espinheiro",
			Lat: -8.0420, Lon: -34.8940, Materials: []string{"Óleo de cozinha", "Pilhas"}},
	}
}

func TestHaversine(t *testing.T) {
	t.Run("Marco Zero to Imbiribeira", func(t *testing.T) {
		d := Haversine(marcoZero, domain.Point{Lat: -8.1275, Lon: -34.9020})
		assert.GreaterOrEqual(t, d, 7.9)
		assert.LessOrEqual(t, d, 8.1)
	})

	t.Run("identity", func(t *testing.T) {
		assert.Equal(t, 0.0, Haversine(marcoZero, marcoZero))
	})

	t.Run("symmetry", func(t *testing.T) {
		points := []domain.Point{
			marcoZero,
			{Lat: 41.3851, Lon: 2.1734},
			{Lat: -33.8688, Lon: 151.2093},
			{Lat: 89.9, Lon: -179.9},
			{Lat: 0, Lon: 0},
		}
		for _, a := range points {
			for _, b := range points {
				assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
				assert.GreaterOrEqual(t, Haversine(a, b), 0.0)
			}
		}
	})

	t.Run("quarter meridian", func(t *testing.T) {
		d := Haversine(domain.Point{Lat: 0, Lon: 0}, domain.Point{Lat: 90, Lon: 0})
		assert.InDelta(t, EarthRadiusKm*3.141592653589793/2, d, 1e-6)
	})

	t.Run("antipodal pairs stay finite", func(t *testing.T) {
		halfCircumference := math.Pi * EarthRadiusKm

		// rounding used to push h above 1 for these pairs
		d := Haversine(domain.Point{Lat: -86.78, Lon: -179}, domain.Point{Lat: 86.78, Lon: 1})
		require.False(t, math.IsNaN(d))
		assert.InDelta(t, halfCircumference, d, 1e-3)

		for lat := -90.0; lat <= 90.0; lat += 0.37 {
			for lon := -180.0; lon < 0; lon += 1.3 {
				a := domain.Point{Lat: lat, Lon: lon}
				b := domain.Point{Lat: -lat, Lon: lon + 180}
				d := Haversine(a, b)
				if !assert.False(t, math.IsNaN(d) || math.IsInf(d, 0), "%v <-> %v", a, b) {
					return
				}
				assert.InDelta(t, halfCircumference, d, 1e-3, "%v <-> %v", a, b)
			}
		}
	})

	t.Run("coordinate bounds", func(t *testing.T) {
		corners := []domain.Point{
			{Lat: 90, Lon: 180},
			{Lat: 90, Lon: -180},
			{Lat: -90, Lon: 180},
			{Lat: -90, Lon: -180},
			{Lat: 0, Lon: 180},
			{Lat: 0, Lon: -180},
		}
		for _, a := range corners {
			for _, b := range corners {
				d := Haversine(a, b)
				require.False(t, math.IsNaN(d), "%v <-> %v", a, b)
				assert.GreaterOrEqual(t, d, 0.0)
				assert.LessOrEqual(t, d, math.Pi*EarthRadiusKm+1e-6)
			}
		}

		// the same meridian seen from both sides of the dateline
		assert.InDelta(t, 0, Haversine(domain.Point{Lat: 0, Lon: 180}, domain.Point{Lat: 0, Lon: -180}), 1e-6)
		// at a pole longitude does not matter
		assert.InDelta(t, 0, Haversine(domain.Point{Lat: 90, Lon: 180}, domain.Point{Lat: 90, Lon: -45}), 1e-6)
	})
}

func TestRank(t *testing.T) {
	t.Run("origin antipodal to a point", func(t *testing.T) {
		catalog := testCatalog()
		target := catalog[0]
		origin := domain.Point{Lat: -target.Lat, Lon: target.Lon + 180}

		ranked, err := Rank(origin, catalog, nil)
		require.NoError(t, err)
		require.Len(t, ranked, len(catalog))

		for i, r := range ranked {
			require.False(t, math.IsNaN(r.DistanceKm), r.ID)
			if i > 0 {
				assert.LessOrEqual(t, ranked[i-1].DistanceKm, r.DistanceKm)
			}
		}
		// the antipode is the farthest place on the sphere
		assert.Equal(t, target.ID, ranked[len(ranked)-1].ID)
		assert.InDelta(t, math.Pi*EarthRadiusKm, ranked[len(ranked)-1].DistanceKm, 1e-3)
	})

	t.Run("sorted ascending without filter", func(t *testing.T) {
		catalog := testCatalog()
		ranked, err := Rank(marcoZero, catalog, nil)
		require.NoError(t, err)
		require.Len(t, ranked, len(catalog))

		for i := 1; i < len(ranked); i++ {
			assert.LessOrEqual(t, ranked[i-1].DistanceKm, ranked[i].DistanceKm)
		}
		assert.Equal(t, "pev-boa-vista", ranked[0].ID)
		assert.Equal(t, "eco-imbiribeira", ranked[len(ranked)-1].ID)

		seen := make(map[string]int)
		for _, r := range ranked {
			seen[r.ID]++
			assert.InDelta(t, Haversine(marcoZero, r.Location()), r.DistanceKm, 1e-12)
		}
		for _, p := range catalog {
			assert.Equal(t, 1, seen[p.ID], p.ID)
		}
	})

	t.Run("exact category filter", func(t *testing.T) {
		ranked, err := Rank(marcoZero, testCatalog(), ExactCategory{Category: domain.CategoryEcoponto})
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		for _, r := range ranked {
			assert.Equal(t, domain.CategoryEcoponto, r.Category)
		}
		assert.Equal(t, "eco-torre", ranked[0].ID)
	})

	t.Run("tag search is case insensitive substring", func(t *testing.T) {
		ranked, err := Rank(marcoZero, testCatalog(), TagSearch{Text: "ENTUL"})
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.ElementsMatch(t, []string{"eco-torre", "eco-imbiribeira"}, []string{ranked[0].ID, ranked[1].ID})

		ranked, err = Rank(marcoZero, testCatalog(), TagSearch{Text: "óleo"})
		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "pev-espinheiro", ranked[0].ID)
	})

	t.Run("empty tag search matches everything", func(t *testing.T) {
		ranked, err := Rank(marcoZero, testCatalog(), TagSearch{Text: "  "})
		require.NoError(t, err)
		assert.Len(t, ranked, 4)
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		same := domain.Point{Lat: -8.05, Lon: -34.88}
		points := []domain.DisposalPoint{
			{ID: "c", Lat: same.Lat, Lon: same.Lon},
			{ID: "a", Lat: same.Lat, Lon: same.Lon},
			{ID: "b", Lat: same.Lat, Lon: same.Lon},
		}
		ranked, err := Rank(marcoZero, points, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
	})

	t.Run("input is not mutated", func(t *testing.T) {
		catalog := testCatalog()
		before := testCatalog()

		ranked, err := Rank(marcoZero, catalog, nil)
		require.NoError(t, err)
		ranked[0].Materials[0] = "changed"

		assert.Equal(t, before, catalog)
	})

	t.Run("empty catalog returns empty result", func(t *testing.T) {
		ranked, err := Rank(marcoZero, nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, ranked)
		assert.Empty(t, ranked)
	})

	t.Run("invalid origin", func(t *testing.T) {
		for _, origin := range []domain.Point{{Lat: 91, Lon: 0}, {Lat: 0, Lon: -181}} {
			_, err := Rank(origin, testCatalog(), nil)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrInvalidCoordinates))
		}
	})
}

func TestNearest(t *testing.T) {
	nearest, err := Nearest(marcoZero, testCatalog(), ExactCategory{Category: domain.CategoryReciclagem})
	require.NoError(t, err)
	require.NotNil(t, nearest)
	assert.Equal(t, "pev-boa-vista", nearest.ID)

	nearest, err = Nearest(marcoZero, testCatalog(), TagSearch{Text: "pneu"})
	require.NoError(t, err)
	assert.Nil(t, nearest)
}
