package user

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/cache"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
	"github.com/shopredat-blip/Viralyn-website/internal/services"
	"github.com/shopredat-blip/Viralyn-website/internal/tracker"
)

// GetWishlist récupère la liste d'envies de la session, produits résolus
// depuis le catalogue. Un identifiant qui ne correspond plus à rien est
// ignoré silencieusement.
func GetWishlist(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	ids := cache.LoadIDList(cache.WishlistKey(sid))

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
		"ids":   ids,
		"count": len(products),
	})
}

// ToggleWishlist ajoute le produit à la liste d'envies s'il n'y est pas,
// le retire sinon.
func ToggleWishlist(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if _, ok := Catalog.Get(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	key := cache.WishlistKey(sid)
	ids, wishlisted := tracker.ToggleWishlist(cache.LoadIDList(key), req.ProductID)

	if err := cache.SaveIDList(key, ids); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde liste d'envies"})
		return
	}

	message := "Produit retiré de la liste d'envies"
	if wishlisted {
		message = "Produit ajouté à la liste d'envies"
		log.Printf("⭐ Produit %s ajouté à la liste d'envies", req.ProductID)
	} else {
		log.Printf("🗑️ Produit %s retiré de la liste d'envies", req.ProductID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"product_id": req.ProductID,
		"wishlisted": wishlisted,
		"count":      len(ids),
	})
}
