package user

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopredat-blip/Viralyn-website/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWishlistEmpty(t *testing.T) {
	r := newSessionRouter(t)

	w := do(r, http.MethodGet, "/api/wishlist")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Product `json:"items"`
		IDs   []string         `json:"ids"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Count)
}

func TestGetWishlistWithoutSession(t *testing.T) {
	r := newAnonymousRouter(t)

	w := do(r, http.MethodGet, "/api/wishlist")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Session indisponible")
}

func TestToggleWishlistUnknownProduct(t *testing.T) {
	r := newSessionRouter(t)

	w := doJSON(r, http.MethodPost, "/api/wishlist/toggle", `{"product_id": "produit-fantome"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Produit introuvable")
}

func TestToggleWishlistMissingProductID(t *testing.T) {
	r := newSessionRouter(t)

	w := doJSON(r, http.MethodPost, "/api/wishlist/toggle", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Données invalides")
}

func TestToggleWishlistStorageUnavailable(t *testing.T) {
	r := newSessionRouter(t)

	// Requête valide, mais le Redis de test est injoignable
	w := doJSON(r, http.MethodPost, "/api/wishlist/toggle", `{"product_id": "spotify-premium"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "liste d'envies")
}
