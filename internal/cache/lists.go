package cache

import (
	"encoding/json"
	"time"

	"github.com/shopredat-blip/Viralyn-website/internal/database"
)

// ListTTL est la durée de vie des listes d'une session (envies, historique).
const ListTTL = 30 * 24 * time.Hour

// WishlistKey renvoie la clé Redis de la liste d'envies d'une session.
func WishlistKey(sessionID string) string {
	return "wishlist:" + sessionID
}

// RecentKey renvoie la clé Redis de l'historique de consultation d'une session.
func RecentKey(sessionID string) string {
	return "recent:" + sessionID
}

// LoadIDList récupère une liste d'identifiants produits. Une clé absente ou
// un contenu illisible donne une liste vide.
func LoadIDList(key string) []string {
	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil || data == "" {
		return []string{}
	}
	return decodeIDList([]byte(data))
}

// SaveIDList enregistre une liste d'identifiants produits avec son TTL.
// Une liste vide supprime la clé.
func SaveIDList(key string, ids []string) error {
	if len(ids) == 0 {
		return database.Redis.Del(ctx, key).Err()
	}
	jsonData, _ := json.Marshal(ids)
	return database.Redis.Set(ctx, key, jsonData, ListTTL).Err()
}

func decodeIDList(data []byte) []string {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return []string{}
	}
	return ids
}
