package models

// CartItem est une ligne de panier : un instantané des champs du produit
// capturé au moment de l'ajout, plus une quantité. L'instantané ne suit
// pas les évolutions ultérieures du catalogue (note recalculée par les
// avis, etc.). Seul ProductID relie la ligne au catalogue.
type CartItem struct {
	ProductID     string   `json:"product_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Image         string   `json:"image"`
	Category      Category `json:"category"`
	Duration      string   `json:"duration"`
	Quantity      int      `json:"quantity"`
}

// NewCartItem capture l'instantané d'un produit pour le panier.
func NewCartItem(p Product, quantity int) CartItem {
	return CartItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      p.Category,
		Duration:      p.Duration,
		Quantity:      quantity,
	}
}
