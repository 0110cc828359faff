package catalog

import (
	"testing"

	"github.com/shopredat-blip/Viralyn-website/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyReviewRejectsEmptyComment(t *testing.T) {
	product := models.Product{ID: "netflix", Rating: 4.8, Reviews: 100}

	for _, comment := range []string{"", "   ", "\n\t"} {
		updated, applied := ApplyReview(product, models.Review{Rating: 5, Comment: comment})

		assert.False(t, applied)
		assert.Equal(t, product, updated, "le produit reste inchangé")
	}
}

func TestApplyReviewPrependsNewest(t *testing.T) {
	product := models.Product{ID: "netflix"}

	product, applied := ApplyReview(product, models.Review{ID: "r1", Rating: 4, Comment: "Bien"})
	require.True(t, applied)

	product, applied = ApplyReview(product, models.Review{ID: "r2", Rating: 5, Comment: "Excellent"})
	require.True(t, applied)

	require.Len(t, product.UserReviews, 2)
	assert.Equal(t, "r2", product.UserReviews[0].ID, "le plus récent en tête")
	assert.Equal(t, "r1", product.UserReviews[1].ID)
}

func TestApplyReviewRecomputesRating(t *testing.T) {
	product := models.Product{ID: "netflix", Rating: 4.8}

	product, _ = ApplyReview(product, models.Review{Rating: 4, Comment: "Bien"})
	assert.Equal(t, 4.0, product.Rating, "un seul avis, la note affichée est la sienne")

	product, _ = ApplyReview(product, models.Review{Rating: 5, Comment: "Excellent"})
	assert.Equal(t, 4.5, product.Rating)
}

func TestApplyReviewRatingMeanExtremes(t *testing.T) {
	product := models.Product{ID: "netflix"}

	product, _ = ApplyReview(product, models.Review{Rating: 5, Comment: "Parfait"})
	product, _ = ApplyReview(product, models.Review{Rating: 1, Comment: "Déçu"})

	assert.Equal(t, 3.0, product.Rating)
}

func TestApplyReviewRoundsHalfAwayFromZero(t *testing.T) {
	product := models.Product{ID: "netflix"}

	// Moyenne 17/4 = 4.25, arrondie à 4.3
	for _, rating := range []int{4, 4, 4, 5} {
		var applied bool
		product, applied = ApplyReview(product, models.Review{Rating: rating, Comment: "ok"})
		require.True(t, applied)
	}

	assert.Equal(t, 4.3, product.Rating)
}

func TestApplyReviewIncrementsCounter(t *testing.T) {
	product := models.Product{ID: "netflix", Reviews: 2847}

	product, _ = ApplyReview(product, models.Review{Rating: 5, Comment: "Top"})

	assert.Equal(t, 2848, product.Reviews, "le compteur affiché s'incrémente, il ne repart pas de la liste")
	assert.Len(t, product.UserReviews, 1)
}

func TestApplyReviewStoresTrimmedComment(t *testing.T) {
	product := models.Product{ID: "netflix"}

	product, applied := ApplyReview(product, models.Review{Rating: 5, Comment: "  Très bon service  "})

	require.True(t, applied)
	assert.Equal(t, "Très bon service", product.UserReviews[0].Comment)
}

func TestApplyReviewDoesNotShareBackingArray(t *testing.T) {
	product := models.Product{ID: "netflix"}
	product, _ = ApplyReview(product, models.Review{ID: "r1", Rating: 4, Comment: "Bien"})

	snapshot := product

	product, _ = ApplyReview(product, models.Review{ID: "r2", Rating: 5, Comment: "Mieux"})

	require.Len(t, snapshot.UserReviews, 1)
	assert.Equal(t, "r1", snapshot.UserReviews[0].ID, "l'instantané précédent reste valable")
	assert.Len(t, product.UserReviews, 2)
}
