package catalog

import (
	"testing"

	"github.com/shopredat-blip/Viralyn-website/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore([]models.Product{
		{
			ID:       "netflix-premium-4k",
			Name:     "Netflix Premium 4K",
			Price:    13.99,
			Category: models.CategoryStreaming,
			Rating:   4.8,
			Reviews:  2847,
			Stock:    models.StockIn,
		},
		{
			ID:       "spotify-premium",
			Name:     "Spotify Premium",
			Price:    6.49,
			Category: models.CategoryMusic,
			Rating:   4.9,
			Reviews:  3102,
			Stock:    models.StockIn,
		},
	})
}

func TestStoreGet(t *testing.T) {
	store := newTestStore()

	p, ok := store.Get("spotify-premium")
	require.True(t, ok)
	assert.Equal(t, "Spotify Premium", p.Name)

	_, ok = store.Get("produit-fantome")
	assert.False(t, ok)
}

func TestStoreLen(t *testing.T) {
	store := newTestStore()
	assert.Equal(t, 2, store.Len())
}

func TestStoreProductsReturnsCopy(t *testing.T) {
	store := newTestStore()

	snapshot := store.Products()
	require.Len(t, snapshot, 2)

	// Modifier la copie ne doit pas toucher le magasin
	snapshot[0].Name = "Piraté"
	snapshot[0].Price = 0

	p, ok := store.Get("netflix-premium-4k")
	require.True(t, ok)
	assert.Equal(t, "Netflix Premium 4K", p.Name)
	assert.Equal(t, 13.99, p.Price)
}

func TestStoreAddReview(t *testing.T) {
	store := newTestStore()

	review := models.Review{
		ID:       "rev-1",
		UserName: "Claire",
		Rating:   5,
		Comment:  "Impeccable",
		Date:     "2025-03-01",
	}

	updated, ok := store.AddReview("netflix-premium-4k", review)
	require.True(t, ok)
	assert.Equal(t, 2848, updated.Reviews)
	require.Len(t, updated.UserReviews, 1)
	assert.Equal(t, "Claire", updated.UserReviews[0].UserName)

	// Le produit stocké reflète la mise à jour
	stored, ok := store.Get("netflix-premium-4k")
	require.True(t, ok)
	assert.Equal(t, updated.Rating, stored.Rating)
	assert.Len(t, stored.UserReviews, 1)
}

func TestStoreAddReviewUnknownProduct(t *testing.T) {
	store := newTestStore()

	_, ok := store.AddReview("produit-fantome", models.Review{Rating: 5, Comment: "super"})
	assert.False(t, ok)
}

func TestStoreAddReviewEmptyComment(t *testing.T) {
	store := newTestStore()

	product, ok := store.AddReview("spotify-premium", models.Review{Rating: 4, Comment: "   "})
	assert.False(t, ok)
	assert.Equal(t, 3102, product.Reviews)

	stored, _ := store.Get("spotify-premium")
	assert.Empty(t, stored.UserReviews)
}
