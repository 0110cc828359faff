package models

// Category est l'énumération fermée des rayons de la boutique.
// Toute valeur inconnue est rejetée au chargement du catalogue,
// jamais propagée dans le moteur.
type Category string

const (
	CategoryStreaming    Category = "Streaming"
	CategoryMusic        Category = "Music"
	CategoryAI           Category = "AI"
	CategoryGaming       Category = "Gaming"
	CategoryProductivity Category = "Productivity"
)

// CategoryAll est la valeur spéciale de filtre "tous les rayons".
// Ce n'est pas une catégorie de produit valide.
const CategoryAll = "All"

// AllCategories liste les rayons dans l'ordre d'affichage de la boutique.
var AllCategories = []Category{
	CategoryStreaming,
	CategoryMusic,
	CategoryAI,
	CategoryGaming,
	CategoryProductivity,
}

// ParseCategory valide une catégorie reçue de l'extérieur (seed, API).
func ParseCategory(s string) (Category, bool) {
	for _, cat := range AllCategories {
		if s == string(cat) {
			return cat, true
		}
	}
	return "", false
}

// StockStatus est l'état de disponibilité affiché d'un produit.
type StockStatus string

const (
	StockIn  StockStatus = "In Stock"
	StockLow StockStatus = "Low Stock"
	StockOut StockStatus = "Out of Stock"
)

// ParseStockStatus valide un état de stock reçu de l'extérieur.
func ParseStockStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StockIn, StockLow, StockOut:
		return StockStatus(s), true
	}
	return "", false
}

// Product est une fiche produit du catalogue Viralyn.
// Le catalogue est la seule source de vérité : le panier et la wishlist
// ne référencent les produits que par leur ID (le panier copie un
// instantané des champs au moment de l'ajout, voir CartItem).
type Product struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"original_price"`
	Image         string      `json:"image"`
	Category      Category    `json:"category"`
	Rating        float64     `json:"rating"` // 0.0–5.0, une décimale
	Reviews       int         `json:"reviews"`
	Benefits      []string    `json:"benefits"`
	Stock         StockStatus `json:"stock"`
	Duration      string      `json:"duration"`
	UserReviews   []Review    `json:"user_reviews,omitempty"` // les plus récents d'abord
}
