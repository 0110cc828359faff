package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

// GetAllCategories liste les rayons de la boutique avec leur nombre de
// produits, dans l'ordre d'affichage.
func GetAllCategories(c *gin.Context) {
	counts := make(map[models.Category]int, len(models.AllCategories))
	for _, p := range Catalog.Products() {
		counts[p.Category]++
	}

	categories := make([]gin.H, 0, len(models.AllCategories)+1)
	categories = append(categories, gin.H{"name": models.CategoryAll, "count": Catalog.Len()})
	for _, category := range models.AllCategories {
		categories = append(categories, gin.H{
			"name":  category,
			"count": counts[category],
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
