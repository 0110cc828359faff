package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/handlers/product"
	"github.com/shopredat-blip/Viralyn-website/internal/handlers/user"
	"github.com/shopredat-blip/Viralyn-website/internal/middleware"
)

// RegisterRoutes câble l'API de la boutique. Toutes les routes /api portent
// la session anonyme du visiteur et la limite de débit générale.
func RegisterRoutes(r *gin.Engine) {
	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		allowedOrigins = strings.Split(raw, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.Session(), middleware.APIRateLimit())
	{
		// Catalogue
		api.GET("/products", product.GetAllProducts)
		api.GET("/products/:id", product.GetProduct)
		api.GET("/products/:id/reviews", product.GetProductReviews)
		api.POST("/products/:id/reviews", product.CreateReview)
		api.GET("/products/:id/insight", product.GetProductInsight)

		// Recherche et filtres
		api.GET("/search", middleware.SearchRateLimit(), product.SearchProducts)
		api.GET("/filters", product.GetProductFilters)
		api.GET("/categories", product.GetAllCategories)

		// Panier
		cart := api.Group("/cart")
		{
			cart.GET("", user.GetCart)
			cart.GET("/ws", user.CartWebSocket)
			cart.GET("/recommendations", user.GetCartRecommendations)
			cart.POST("/add", middleware.CartRateLimit(), user.AddToCart)
			cart.PUT("/item/:productId", middleware.CartRateLimit(), user.UpdateCartQuantity)
			cart.DELETE("/item/:productId", middleware.CartRateLimit(), user.RemoveFromCart)
			cart.DELETE("/clear", middleware.CartRateLimit(), user.ClearCart)
		}

		// Liste d'envies
		api.GET("/wishlist", user.GetWishlist)
		api.POST("/wishlist/toggle", user.ToggleWishlist)

		// Historique de consultation
		api.GET("/history", user.GetHistory)
		api.DELETE("/history", user.ClearHistory)
	}
}
