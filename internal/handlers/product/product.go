package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/cache"
	"github.com/shopredat-blip/Viralyn-website/internal/catalog"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
	"github.com/shopredat-blip/Viralyn-website/internal/services"
	"github.com/shopredat-blip/Viralyn-website/internal/tracker"
)

// Catalog est le magasin produits partagé, câblé au démarrage.
var Catalog *catalog.Store

const allProductsCacheKey = "products:all"

// GetAllProducts renvoie le catalogue complet dans l'ordre de référence
func GetAllProducts(c *gin.Context) {
	ctx := context.Background()

	// ✅ Vérifie le cache Redis
	if val, err := cache.GetCache(allProductsCacheKey); err == nil && val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products := services.ResolveProductImages(ctx, Catalog.Products())

	// ✅ Met en cache
	if data, err := json.Marshal(products); err == nil {
		cache.SetCache(allProductsCacheKey, data, cache.ProductCacheTTL)
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct renvoie la fiche d'un produit (aperçu rapide) et enregistre
// la consultation dans l'historique de la session.
func GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, ok := Catalog.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	product.Image = services.ResolveImageURL(context.Background(), product.Image)

	if sessionID := c.GetString("session_id"); sessionID != "" {
		key := cache.RecentKey(sessionID)
		history := tracker.TrackViewed(cache.LoadIDList(key), product.ID)
		if err := cache.SaveIDList(key, history); err != nil {
			log.Printf("⚠️ Historique non enregistré: %v", err)
		}
	}

	c.JSON(http.StatusOK, product)
}
