package locations_test

import (
	"testing"

	"github.com/admindocentes/backend/locations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvinces(t *testing.T) {
	provinces := locations.Provinces()
	require.Len(t, provinces, 24)
	assert.Equal(t, "Azuay", provinces[0])
	assert.Equal(t, "Zamora Chinchipe", provinces[23])
}

func TestCitiesIn(t *testing.T) {
	t.Run("KnownProvince", func(t *testing.T) {
		cities := locations.CitiesIn("Pichincha")
		require.NotEmpty(t, cities)
		assert.Contains(t, cities, "Quito")
	})

	t.Run("UnknownProvinceIsEmptyNotError", func(t *testing.T) {
		assert.Empty(t, locations.CitiesIn("Narnia"))
	})
}

func TestAllCities(t *testing.T) {
	all := locations.AllCities()
	assert.Contains(t, all, "Quito")
	assert.Contains(t, all, "Guayaquil")
	assert.Contains(t, all, "Cuenca")

	// Flattened in province order: Azuay's capital precedes Pichincha's.
	var cuencaAt, quitoAt int
	for i, city := range all {
		switch city {
		case "Cuenca":
			if cuencaAt == 0 {
				cuencaAt = i
			}
		case "Quito":
			if quitoAt == 0 {
				quitoAt = i
			}
		}
	}
	assert.Less(t, cuencaAt, quitoAt)
}

func TestSearchCities(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Contains(t, locations.SearchCities("quito"), "Quito")
		assert.Contains(t, locations.SearchCities("QUITO"), "Quito")
	})

	t.Run("DiacriticFolding", func(t *testing.T) {
		assert.Contains(t, locations.SearchCities("canar"), "Cañar")
		assert.Contains(t, locations.SearchCities("giron"), "Girón")
	})

	t.Run("Substring", func(t *testing.T) {
		matches := locations.SearchCities("san")
		assert.Contains(t, matches, "San Fernando")
		assert.Contains(t, matches, "Santa Isabel")
	})

	t.Run("NoMatchIsEmpty", func(t *testing.T) {
		assert.Empty(t, locations.SearchCities("zzzz"))
	})

	t.Run("BlankQueryIsEmpty", func(t *testing.T) {
		assert.Empty(t, locations.SearchCities("   "))
	})
}
