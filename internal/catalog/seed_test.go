package catalog

import (
	"testing"

	"github.com/shopredat-blip/Viralyn-website/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	products, err := LoadSeed()

	require.NoError(t, err)
	require.NotEmpty(t, products)

	seen := make(map[string]bool)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "identifiant en double: %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.OriginalPrice, p.Price, "%s: le prix barré couvre le prix", p.ID)

		_, ok := models.ParseCategory(string(p.Category))
		assert.True(t, ok, "%s: catégorie invalide", p.ID)

		_, ok = models.ParseStockStatus(string(p.Stock))
		assert.True(t, ok, "%s: disponibilité invalide", p.ID)

		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
}

func TestLoadSeedKeepsCatalogOrder(t *testing.T) {
	products, err := LoadSeed()

	require.NoError(t, err)
	require.NotEmpty(t, products)

	// L'ordre du fichier embarqué est l'ordre "featured" de la boutique
	assert.Equal(t, "netflix-premium-4k", products[0].ID)
}

func TestLoadSeedCoversEveryCategory(t *testing.T) {
	products, err := LoadSeed()
	require.NoError(t, err)

	counts := make(map[models.Category]int)
	for _, p := range products {
		counts[p.Category]++
	}

	for _, category := range models.AllCategories {
		assert.Greater(t, counts[category], 0, "aucun produit dans le rayon %s", category)
	}
}
