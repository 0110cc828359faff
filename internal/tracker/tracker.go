package tracker

// HistoryLimit est le nombre maximum de produits conservés dans
// l'historique de consultation.
const HistoryLimit = 10

// TrackViewed enregistre une consultation de produit. Le produit passe en
// tête de l'historique, sans doublon, et l'historique est tronqué à
// HistoryLimit entrées.
func TrackViewed(history []string, productID string) []string {
	if productID == "" {
		return history
	}

	updated := make([]string, 0, len(history)+1)
	updated = append(updated, productID)
	for _, id := range history {
		if id != productID {
			updated = append(updated, id)
		}
	}

	if len(updated) > HistoryLimit {
		updated = updated[:HistoryLimit]
	}
	return updated
}

// ToggleWishlist ajoute le produit à la liste d'envies s'il n'y figure pas,
// le retire sinon. Le second retour indique si le produit figure dans la
// liste après l'opération.
func ToggleWishlist(wishlist []string, productID string) ([]string, bool) {
	for i, id := range wishlist {
		if id == productID {
			return append(wishlist[:i], wishlist[i+1:]...), false
		}
	}
	return append(wishlist, productID), true
}

// Contains indique si un identifiant figure dans la liste.
func Contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
