package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/cache"
	"github.com/shopredat-blip/Viralyn-website/internal/cart"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
	"github.com/shopredat-blip/Viralyn-website/internal/recommend"
	"github.com/shopredat-blip/Viralyn-website/internal/services"
)

// GetCartRecommendations propose des produits complémentaires au panier.
// L'assistant IA suggère des pistes, rapprochées ensuite du catalogue.
// Panier vide : aucune suggestion, aucun appel IA.
func GetCartRecommendations(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	items := cache.LoadCart(sid)

	if !recommend.ShouldFetch(items) {
		c.JSON(http.StatusOK, gin.H{
			"suggestions": []models.Product{},
			"based_on":    "",
		})
		return
	}

	interests := recommend.InterestText(items)
	fragments := services.GetSmartRecommendations(c.Request.Context(), interests)

	suggestions := recommend.MatchSuggestions(
		Catalog.Products(),
		fragments,
		cart.IDs(items),
		recommend.SuggestionLimit,
	)

	ctx := context.Background()
	for i := range suggestions {
		suggestions[i].Image = services.ResolveImageURL(ctx, suggestions[i].Image)
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"based_on":    interests,
	})
}
