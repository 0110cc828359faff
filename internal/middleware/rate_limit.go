package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopredat-blip/Viralyn-website/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	// Limites par endpoint
	APIMaxRequests    = 100 // Par minute pour les endpoints généraux
	SearchMaxRequests = 30  // Recherches par minute et par IP
	CartMaxRequests   = 20  // Opérations panier par minute et par session

	APICooldown = 1 * time.Minute
)

// APIRateLimit limite le nombre de requêtes par IP (général)
func APIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "api_requests:" + ip

		// Vérifier le nombre de requêtes dans la dernière minute
		requests, _ := database.Redis.Get(ctx, key).Int()
		if requests >= APIMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de requêtes. Réessayez dans 1 minute",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		// Incrémenter le compteur
		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, APICooldown)
		pipe.Exec(ctx)

		// Ajouter les headers de rate limit
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", APIMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", APIMaxRequests-requests-1))

		c.Next()
	}
}

// SearchRateLimit limite les recherches (anti-spam)
func SearchRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ctx := context.Background()
		key := "search_requests:" + ip

		requests, _ := database.Redis.Get(ctx, key).Int()
		if requests >= SearchMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de recherches. Réessayez dans 1 minute",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		// Incrémenter
		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, 1*time.Minute)
		pipe.Exec(ctx)

		c.Next()
	}
}

// CartRateLimit limite les opérations panier (anti-spam)
func CartRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "cart_ops:" + sessionID

		requests, _ := database.Redis.Get(ctx, key).Int()
		if requests >= CartMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop d'opérations sur le panier. Ralentissez un peu",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		// Incrémenter
		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, 1*time.Minute)
		pipe.Exec(ctx)

		c.Next()
	}
}
