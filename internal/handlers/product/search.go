package product

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/catalog"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
	"github.com/shopredat-blip/Viralyn-website/internal/services"
)

// SearchProducts filtre et trie le catalogue selon les critères du client.
// Tous les critères se cumulent. Une recherche sans résultat renvoie une
// liste vide, jamais une erreur.
func SearchProducts(c *gin.Context) {
	spec := models.DefaultQuerySpec()
	spec.SearchText = c.Query("q")
	spec.Sort = models.ParseSortKey(c.DefaultQuery("sort", "featured"))

	rawCategory := c.DefaultQuery("category", models.CategoryAll)
	if rawCategory != models.CategoryAll {
		if _, ok := models.ParseCategory(rawCategory); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue: " + rawCategory})
			return
		}
	}
	spec.Category = rawCategory

	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			spec.MaxPrice = v
		}
	}
	if raw := c.Query("min_rating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			spec.MinRating = v
		}
	}
	spec.InStockOnly = c.Query("in_stock") == "true"

	results := catalog.FilterAndSort(Catalog.Products(), spec)
	results = services.ResolveProductImages(context.Background(), results)

	maxPrice := ""
	if spec.MaxPrice != math.MaxFloat64 {
		maxPrice = strconv.FormatFloat(spec.MaxPrice, 'f', -1, 64)
	}

	c.JSON(http.StatusOK, gin.H{
		"products": results,
		"count":    len(results),
		"filters": gin.H{
			"query":      spec.SearchText,
			"category":   spec.Category,
			"max_price":  maxPrice,
			"min_rating": spec.MinRating,
			"in_stock":   spec.InStockOnly,
			"sort":       spec.Sort,
		},
	})
}

// GetProductFilters retourne les filtres disponibles
func GetProductFilters(c *gin.Context) {
	products := Catalog.Products()

	categoryCounts := make(map[models.Category]int, len(models.AllCategories))
	availability := map[models.StockStatus]int{}
	var minPrice, maxPrice float64
	first := true

	for _, p := range products {
		categoryCounts[p.Category]++
		availability[p.Stock]++
		if first {
			minPrice = p.Price
			maxPrice = p.Price
			first = false
		} else {
			if p.Price < minPrice {
				minPrice = p.Price
			}
			if p.Price > maxPrice {
				maxPrice = p.Price
			}
		}
	}

	categories := []gin.H{{"name": models.CategoryAll, "count": len(products)}}
	for _, category := range models.AllCategories {
		categories = append(categories, gin.H{
			"name":  category,
			"count": categoryCounts[category],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"price_range": gin.H{
			"min": minPrice,
			"max": maxPrice,
		},
		"availability": gin.H{
			"in_stock":     availability[models.StockIn],
			"low_stock":    availability[models.StockLow],
			"out_of_stock": availability[models.StockOut],
		},
		"sort_options": []gin.H{
			{"value": models.SortFeatured, "label": "En vedette"},
			{"value": models.SortPriceLow, "label": "Prix croissant"},
			{"value": models.SortPriceHigh, "label": "Prix décroissant"},
			{"value": models.SortRating, "label": "Meilleures notes"},
			{"value": models.SortName, "label": "Nom A-Z"},
		},
	})
}
