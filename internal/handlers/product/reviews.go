package product

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopredat-blip/Viralyn-website/internal/cache"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
	"github.com/shopredat-blip/Viralyn-website/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateReview crée un avis sur un produit
func CreateReview(c *gin.Context) {
	productID := c.Param("id")

	var req struct {
		Rating   int    `json:"rating" binding:"required,min=1,max=5"`
		UserName string `json:"user_name"`
		Comment  string `json:"comment"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if _, ok := Catalog.Get(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		userName = "Anonyme"
	}

	review := models.Review{
		ID:       uuid.New().String(),
		UserName: userName,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Date:     time.Now().Format(models.ReviewDateLayout),
	}

	product, applied := Catalog.AddReview(productID, review)
	if !applied {
		// Commentaire vide : l'avis est ignoré, le produit reste inchangé
		c.JSON(http.StatusOK, gin.H{
			"message": "Avis sans commentaire ignoré",
			"product": product,
		})
		return
	}

	// Persistance en arrière-plan, la réponse n'attend pas ScyllaDB
	go services.SaveReview(productID, review)

	// La note agrégée a changé, le catalogue en cache est périmé
	cache.DeleteCache(allProductsCacheKey)

	log.Printf("⭐ Avis créé: %s pour produit %s (note: %d/5)", review.ID, productID, review.Rating)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Avis créé avec succès",
		"review":  review,
		"product": product,
	})
}

// GetProductReviews récupère les avis d'un produit
func GetProductReviews(c *gin.Context) {
	productID := c.Param("id")

	product, ok := Catalog.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	reviews := product.UserReviews
	if reviews == nil {
		reviews = []models.Review{}
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"rating": models.ProductRating{
			ProductID:     product.ID,
			AverageRating: product.Rating,
			TotalReviews:  product.Reviews,
		},
	})
}
