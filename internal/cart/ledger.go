package cart

import (
	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

// Add ajoute un produit au panier. Si le produit y figure déjà, seule sa
// quantité augmente. Une quantité inférieure à 1 est ramenée à 1.
func Add(items []models.CartItem, product models.Product, quantity int) []models.CartItem {
	if quantity < 1 {
		quantity = 1
	}

	for i, item := range items {
		if item.ProductID == product.ID {
			items[i].Quantity += quantity
			return items
		}
	}

	return append(items, models.NewCartItem(product, quantity))
}

// UpdateQuantity fixe la quantité d'une ligne du panier. Une quantité de
// zéro (ou moins) retire la ligne. Un produit absent du panier est ignoré.
func UpdateQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return Remove(items, productID)
	}

	for i, item := range items {
		if item.ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

// Remove retire une ligne du panier. Un produit absent est ignoré.
func Remove(items []models.CartItem, productID string) []models.CartItem {
	for i, item := range items {
		if item.ProductID == productID {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// Total renvoie le montant du panier (prix × quantité, toutes lignes).
func Total(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count renvoie le nombre d'articles du panier, quantités comprises.
// Deux exemplaires d'un même produit comptent pour deux.
func Count(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// IDs renvoie les identifiants produits présents dans le panier.
func IDs(items []models.CartItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
