package cache

import (
	"encoding/json"
	"time"

	"github.com/shopredat-blip/Viralyn-website/internal/database"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

const CartTTL = 30 * 24 * time.Hour // 30 jours

// CartKey renvoie la clé Redis du panier d'une session.
func CartKey(sessionID string) string {
	return "cart:" + sessionID
}

// CartChannel renvoie le canal pub/sub du panier d'une session.
func CartChannel(sessionID string) string {
	return "cart:" + sessionID
}

// LoadCart récupère le panier d'une session. Un panier absent ou illisible
// est traité comme un panier vide, il n'y a jamais d'échec côté visiteur.
func LoadCart(sessionID string) []models.CartItem {
	data, err := database.Redis.Get(ctx, CartKey(sessionID)).Result()
	if err != nil || data == "" {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return []models.CartItem{}
	}
	return items
}

// SaveCart enregistre le panier avec son TTL et notifie les clients
// temps réel. Un panier vide supprime la clé.
func SaveCart(sessionID string, items []models.CartItem) error {
	pipe := database.Redis.Pipeline()
	if len(items) == 0 {
		pipe.Del(ctx, CartKey(sessionID))
	} else {
		jsonData, _ := json.Marshal(items)
		pipe.Set(ctx, CartKey(sessionID), jsonData, CartTTL)
	}
	pipe.Publish(ctx, CartChannel(sessionID), "updated")
	_, err := pipe.Exec(ctx)
	return err
}

// ClearCart vide le panier et notifie les clients temps réel.
func ClearCart(sessionID string) error {
	pipe := database.Redis.Pipeline()
	pipe.Del(ctx, CartKey(sessionID))
	pipe.Publish(ctx, CartChannel(sessionID), "cleared")
	_, err := pipe.Exec(ctx)
	return err
}
