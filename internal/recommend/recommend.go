package recommend

import (
	"strings"

	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

// SuggestionLimit est le nombre maximum de suggestions renvoyées.
const SuggestionLimit = 3

// ShouldFetch indique si des suggestions doivent être demandées.
// Un panier vide ne déclenche aucun appel.
func ShouldFetch(items []models.CartItem) bool {
	return len(items) > 0
}

// InterestText résume le contenu du panier pour l'assistant IA :
// les noms des produits, séparés par des virgules.
func InterestText(items []models.CartItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return strings.Join(names, ", ")
}

// MatchSuggestions rapproche les fragments renvoyés par l'assistant des
// produits du catalogue. Chaque fragment retient le premier produit dont le
// nom le contient (insensible à la casse). Les produits exclus (déjà au
// panier) et les doublons sont écartés, et le résultat est plafonné à limit.
func MatchSuggestions(products []models.Product, fragments []string, excludeIDs []string, limit int) []models.Product {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	matched := make([]models.Product, 0, limit)
	picked := make(map[string]bool, limit)

	for _, fragment := range fragments {
		needle := strings.ToLower(strings.TrimSpace(fragment))
		if needle == "" {
			continue
		}
		for _, p := range products {
			if excluded[p.ID] || picked[p.ID] {
				continue
			}
			if strings.Contains(strings.ToLower(p.Name), needle) {
				matched = append(matched, p)
				picked[p.ID] = true
				break
			}
		}
		if len(matched) >= limit {
			break
		}
	}

	return matched
}
