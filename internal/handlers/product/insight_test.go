package product

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopredat-blip/Viralyn-website/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInsightRouter(t *testing.T) *gin.Engine {
	t.Helper()

	r := newCatalogRouter(t)
	r.GET("/api/products/:id/insight", GetProductInsight)
	return r
}

func TestGetProductInsightFallsBack(t *testing.T) {
	r := newInsightRouter(t)
	t.Setenv("GEMINI_API_KEY", "")

	// Sans assistant IA ni cache joignable, l'analyse de secours est servie
	w := doRequest(r, http.MethodGet, "/api/products/netflix-premium-4k/insight")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ProductID string `json:"product_id"`
		Insight   string `json:"insight"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "netflix-premium-4k", resp.ProductID)
	assert.Equal(t, services.FallbackInsight, resp.Insight)
}

func TestGetProductInsightUnknownProduct(t *testing.T) {
	r := newInsightRouter(t)

	w := doRequest(r, http.MethodGet, "/api/products/produit-fantome/insight")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Produit introuvable")
}
