package models

// ReviewDateLayout est le format des dates d'avis (AAAA-MM-JJ).
const ReviewDateLayout = "2006-01-02"

// Review est un avis client rattaché à un produit.
// Date est une date calendaire d'affichage (AAAA-MM-JJ).
type Review struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"` // 1-5
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

// ProductRating résume la notation agrégée d'un produit telle
// qu'exposée par l'API des avis.
type ProductRating struct {
	ProductID     string  `json:"product_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}
