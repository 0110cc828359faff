package services

import (
	"log"
	"sort"
	"time"

	"github.com/shopredat-blip/Viralyn-website/internal/catalog"
	"github.com/shopredat-blip/Viralyn-website/internal/database"
	"github.com/shopredat-blip/Viralyn-website/internal/models"

	"github.com/gocql/gocql"
)

// SaveReview persiste un avis dans ScyllaDB. Conçu pour être appelé en
// goroutine après la réponse HTTP : un échec est journalisé, jamais
// remonté au visiteur. Sans ScyllaDB, l'avis vit en mémoire seulement.
func SaveReview(productID string, review models.Review) {
	session, err := database.GetReviewsSession()
	if err != nil {
		log.Printf("⚠️ Avis non persisté (%s): %v", productID, err)
		return
	}

	reviewID, err := gocql.ParseUUID(review.ID)
	if err != nil {
		log.Printf("⚠️ Identifiant d'avis invalide (%s): %v", review.ID, err)
		return
	}

	err = session.Query(`INSERT INTO reviews_by_product
		(product_id, created_at, review_id, user_name, rating, comment)
		VALUES (?, ?, ?, ?, ?, ?)`,
		productID, time.Now().UTC(), reviewID,
		review.UserName, review.Rating, review.Comment).Exec()
	if err != nil {
		log.Printf("⚠️ Échec persistance avis (%s): %v", productID, err)
	}
}

type storedReview struct {
	ProductID string
	Review    models.Review
	CreatedAt time.Time
}

// ReplayReviews recharge les avis persistés dans le catalogue en mémoire.
// Les avis sont rejoués du plus ancien au plus récent pour que chaque
// produit retrouve sa liste (du plus récent en tête) et sa note agrégée.
// Sans ScyllaDB, le catalogue repart de son état initial.
func ReplayReviews(store *catalog.Store) {
	session, err := database.GetReviewsSession()
	if err != nil {
		log.Printf("⚠️ Avis non rejoués: %v", err)
		return
	}

	iter := session.Query(`SELECT product_id, created_at, review_id, user_name, rating, comment
		FROM reviews_by_product`).Iter()

	var (
		stored    []storedReview
		productID string
		createdAt time.Time
		reviewID  gocql.UUID
		userName  string
		rating    int
		comment   string
	)

	for iter.Scan(&productID, &createdAt, &reviewID, &userName, &rating, &comment) {
		stored = append(stored, storedReview{
			ProductID: productID,
			CreatedAt: createdAt,
			Review: models.Review{
				ID:       reviewID.String(),
				UserName: userName,
				Rating:   rating,
				Comment:  comment,
				Date:     createdAt.Format(models.ReviewDateLayout),
			},
		})
	}

	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Lecture des avis interrompue: %v", err)
	}

	sort.Slice(stored, func(i, j int) bool {
		return stored[i].CreatedAt.Before(stored[j].CreatedAt)
	})

	applied := 0
	for _, s := range stored {
		if _, ok := store.AddReview(s.ProductID, s.Review); ok {
			applied++
		}
	}

	if applied > 0 {
		log.Printf("✅ %d avis rejoués depuis ScyllaDB", applied)
	}
}
