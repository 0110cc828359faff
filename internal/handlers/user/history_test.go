package user

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopredat-blip/Viralyn-website/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHistoryEmpty(t *testing.T) {
	r := newSessionRouter(t)

	w := do(r, http.MethodGet, "/api/history")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Product `json:"items"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Count)
}

func TestGetHistoryWithoutSession(t *testing.T) {
	r := newAnonymousRouter(t)

	w := do(r, http.MethodGet, "/api/history")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Session indisponible")
}

func TestClearHistoryStorageUnavailable(t *testing.T) {
	r := newSessionRouter(t)

	w := do(r, http.MethodDelete, "/api/history")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erreur effacement historique")
}
