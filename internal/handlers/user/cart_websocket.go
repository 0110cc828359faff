package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/shopredat-blip/Viralyn-website/internal/cache"
	"github.com/shopredat-blip/Viralyn-website/internal/cart"
	"github.com/shopredat-blip/Viralyn-website/internal/database"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket pousse l'état du panier à tous les onglets d'une même
// session dès qu'il change. Le badge du panier reste ainsi synchronisé
// sans polling.
func CartWebSocket(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session indisponible"})
		return
	}

	// Upgrade vers WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	// S'abonner au canal Redis de cette session
	pubsub := database.Redis.Subscribe(ctx, cache.CartChannel(sid))
	defer pubsub.Close()

	ch := pubsub.Channel()

	// Envoyer un message de connexion
	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	// Boucle d'écoute
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			items := cache.LoadCart(sid)
			response := map[string]interface{}{
				"type":  "cart_updated",
				"items": resolveCartImages(items),
				"total": cart.Total(items),
				"count": cart.Count(items),
			}

			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
