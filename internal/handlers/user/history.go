package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/cache"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
	"github.com/shopredat-blip/Viralyn-website/internal/services"
)

// GetHistory récupère l'historique de consultation de la session, du plus
// récent au plus ancien, produits résolus depuis le catalogue.
func GetHistory(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	ids := cache.LoadIDList(cache.RecentKey(sid))

	ctx := context.Background()
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := Catalog.Get(id); ok {
			product.Image = services.ResolveImageURL(ctx, product.Image)
			products = append(products, product)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": products,
		"count": len(products),
	})
}

// ClearHistory efface l'historique de consultation de la session
func ClearHistory(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	if err := cache.DeleteCache(cache.RecentKey(sid)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur effacement historique"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Historique effacé"})
}
