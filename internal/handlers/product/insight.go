package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/cache"
	"github.com/shopredat-blip/Viralyn-website/internal/services"
)

// GetProductInsight renvoie l'analyse d'achat générée par l'assistant IA
// pour un produit. L'analyse est gardée en cache 24h, l'appel est coûteux
// et la fiche produit ne bouge presque jamais.
func GetProductInsight(c *gin.Context) {
	productID := c.Param("id")

	product, ok := Catalog.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	cacheKey := "insight:" + productID
	if val, err := cache.GetCache(cacheKey); err == nil && val != "" {
		c.JSON(http.StatusOK, gin.H{"product_id": productID, "insight": val})
		return
	}

	insight := services.GetProductInsight(c.Request.Context(), product)

	// L'analyse de secours n'est pas mise en cache : l'assistant sera
	// retenté à la prochaine consultation
	if insight != services.FallbackInsight {
		cache.SetCache(cacheKey, insight, cache.InsightCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{"product_id": productID, "insight": insight})
}
