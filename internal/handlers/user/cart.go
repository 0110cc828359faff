package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/cache"
	"github.com/shopredat-blip/Viralyn-website/internal/cart"
	"github.com/shopredat-blip/Viralyn-website/internal/catalog"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
	"github.com/shopredat-blip/Viralyn-website/internal/services"
)

// Catalog est le magasin produits partagé, câblé au démarrage.
var Catalog *catalog.Store

// resolveCartImages remplace les clés images par des URLs servables.
// À appeler après la sauvegarde : le panier stocké garde les clés brutes,
// les URLs signées expirent bien avant lui.
func resolveCartImages(items []models.CartItem) []models.CartItem {
	ctx := context.Background()
	for i := range items {
		items[i].Image = services.ResolveImageURL(ctx, items[i].Image)
	}
	return items
}

// GetCart récupère le panier de la session
func GetCart(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	items := cache.LoadCart(sid)

	c.JSON(http.StatusOK, gin.H{
		"items": resolveCartImages(items),
		"total": cart.Total(items),
		"count": cart.Count(items),
	})
}

// AddToCart ajoute un produit au panier de la session. Un produit déjà
// présent voit sa quantité augmenter.
func AddToCart(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	product, ok := Catalog.Get(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	if product.Stock == models.StockOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit en rupture de stock"})
		return
	}

	items := cart.Add(cache.LoadCart(sid), product, input.Quantity)

	if err := cache.SaveCart(sid, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   resolveCartImages(items),
		"total":   cart.Total(items),
		"count":   cart.Count(items),
	})
}

// UpdateCartQuantity fixe la quantité d'une ligne du panier.
// Une quantité de zéro retire la ligne. Un produit absent du panier est
// ignoré sans erreur.
func UpdateCartQuantity(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	productID := c.Param("productId")

	// Pointeur pour que quantity=0 passe le binding "required"
	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	if *input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	items := cart.UpdateQuantity(cache.LoadCart(sid), productID, *input.Quantity)

	if err := cache.SaveCart(sid, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantité mise à jour",
		"items":   resolveCartImages(items),
		"total":   cart.Total(items),
		"count":   cart.Count(items),
	})
}

// RemoveFromCart retire une ligne du panier. Un produit absent est ignoré
// sans erreur.
func RemoveFromCart(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	productID := c.Param("productId")

	items := cart.Remove(cache.LoadCart(sid), productID)

	if err := cache.SaveCart(sid, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   resolveCartImages(items),
		"total":   cart.Total(items),
		"count":   cart.Count(items),
	})
}

// ClearCart vide le panier de la session
func ClearCart(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	if err := cache.ClearCart(sid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
		"items":   []models.CartItem{},
		"total":   0,
		"count":   0,
	})
}
