package catalog

import (
	"sort"
	"strings"

	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

// FilterAndSort applique tous les critères de la requête puis trie le résultat.
// Les critères se cumulent (ET logique). La fonction ne modifie jamais la
// tranche d'entrée et l'ordre du catalogue est préservé à égalité de tri.
func FilterAndSort(products []models.Product, spec models.QuerySpec) []models.Product {
	search := strings.ToLower(strings.TrimSpace(spec.SearchText))

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if spec.Category != models.CategoryAll && string(p.Category) != spec.Category {
			continue
		}
		if p.Price > spec.MaxPrice {
			continue
		}
		if p.Rating < spec.MinRating {
			continue
		}
		if spec.InStockOnly && p.Stock != models.StockIn {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, spec.Sort)
	return result
}

// sortProducts trie en place selon la clé demandée. Le tri est stable pour
// que deux produits à égalité restent dans l'ordre du catalogue. La clé
// "featured" conserve simplement cet ordre.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case models.SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	}
}
