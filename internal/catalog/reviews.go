package catalog

import (
	"math"
	"strings"

	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

// ApplyReview ajoute un avis à un produit et recalcule sa note.
// Un commentaire vide (ou composé d'espaces) est refusé : le produit est
// renvoyé tel quel avec false. L'avis le plus récent passe en tête de liste.
func ApplyReview(p models.Product, review models.Review) (models.Product, bool) {
	review.Comment = strings.TrimSpace(review.Comment)
	if review.Comment == "" {
		return p, false
	}

	reviews := make([]models.Review, 0, len(p.UserReviews)+1)
	reviews = append(reviews, review)
	reviews = append(reviews, p.UserReviews...)

	p.UserReviews = reviews
	p.Rating = averageRating(reviews)
	p.Reviews++

	return p, true
}

// averageRating calcule la moyenne des notes, arrondie à une décimale.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	mean := float64(total) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
