package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

//go:embed seed_products.json
var seedData []byte

// seedProduct est la forme brute du JSON embarqué, avant validation.
type seedProduct struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Benefits      []string `json:"benefits"`
	Stock         string   `json:"stock"`
	Duration      string   `json:"duration"`
}

// LoadSeed charge le catalogue embarqué et écarte les entrées invalides.
// Une entrée rejetée est journalisée mais ne bloque pas le démarrage,
// sauf si le catalogue final est vide.
func LoadSeed() ([]models.Product, error) {
	var raw []seedProduct
	if err := json.Unmarshal(seedData, &raw); err != nil {
		return nil, fmt.Errorf("catalogue embarqué illisible: %w", err)
	}

	products := make([]models.Product, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, entry := range raw {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			log.Printf("⚠️ Produit sans identifiant ignoré (%s)", entry.Name)
			continue
		}
		if seen[id] {
			log.Printf("⚠️ Identifiant produit en double ignoré: %s", id)
			continue
		}
		if strings.TrimSpace(entry.Name) == "" {
			log.Printf("⚠️ Produit sans nom ignoré: %s", id)
			continue
		}
		if entry.Price <= 0 {
			log.Printf("⚠️ Prix invalide pour %s: %.2f", id, entry.Price)
			continue
		}
		if entry.OriginalPrice < entry.Price {
			log.Printf("⚠️ Prix barré inférieur au prix pour %s", id)
			continue
		}
		category, ok := models.ParseCategory(entry.Category)
		if !ok {
			log.Printf("⚠️ Catégorie inconnue pour %s: %q", id, entry.Category)
			continue
		}
		stock, ok := models.ParseStockStatus(entry.Stock)
		if !ok {
			log.Printf("⚠️ Disponibilité inconnue pour %s: %q", id, entry.Stock)
			continue
		}

		seen[id] = true
		products = append(products, models.Product{
			ID:            id,
			Name:          entry.Name,
			Description:   entry.Description,
			Price:         entry.Price,
			OriginalPrice: entry.OriginalPrice,
			Image:         entry.Image,
			Category:      category,
			Rating:        entry.Rating,
			Reviews:       entry.Reviews,
			Benefits:      entry.Benefits,
			Stock:         stock,
			Duration:      entry.Duration,
		})
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("catalogue embarqué vide après validation")
	}

	return products, nil
}
