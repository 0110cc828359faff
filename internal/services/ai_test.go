package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopredat-blip/Viralyn-website/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini démarre un faux serveur Gemini et redirige le client dessus
// le temps du test.
func fakeGemini(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	previous := geminiBaseURL
	geminiBaseURL = server.URL
	t.Cleanup(func() { geminiBaseURL = previous })

	t.Setenv("GEMINI_API_KEY", "cle-de-test")
}

func geminiReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func TestGetSmartRecommendations(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiReply("Netflix, Spotify, Xbox Game Pass")))
	})

	fragments := GetSmartRecommendations(context.Background(), "ChatGPT Plus")

	assert.Equal(t, []string{"Netflix", "Spotify", "Xbox Game Pass"}, fragments)
}

func TestGetSmartRecommendationsFallbackOnServerError(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota épuisé", http.StatusInternalServerError)
	})

	fragments := GetSmartRecommendations(context.Background(), "Netflix Premium 4K")

	assert.Equal(t, FallbackSuggestions, fragments)
}

func TestGetSmartRecommendationsFallbackOnEmptyReply(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiReply("   ")))
	})

	fragments := GetSmartRecommendations(context.Background(), "Spotify Premium")

	assert.Equal(t, FallbackSuggestions, fragments)
}

func TestGetSmartRecommendationsFallbackWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	fragments := GetSmartRecommendations(context.Background(), "Netflix Premium 4K")

	assert.Equal(t, FallbackSuggestions, fragments)
}

func TestGetProductInsight(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiReply("  Un incontournable du streaming à prix réduit.  ")))
	})

	insight := GetProductInsight(context.Background(), models.Product{
		ID:            "netflix-premium-4k",
		Name:          "Netflix Premium 4K",
		Price:         13.99,
		OriginalPrice: 19.99,
		Rating:        4.8,
		Reviews:       2847,
		Benefits:      []string{"4K Ultra HD", "4 écrans"},
	})

	// La réponse est renvoyée sans espaces parasites
	assert.Equal(t, "Un incontournable du streaming à prix réduit.", insight)
}

func TestGetProductInsightFallback(t *testing.T) {
	fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "indisponible", http.StatusServiceUnavailable)
	})

	insight := GetProductInsight(context.Background(), models.Product{ID: "spotify-premium", Name: "Spotify Premium"})

	assert.Equal(t, FallbackInsight, insight)
}

func TestParseFragments(t *testing.T) {
	fragments := parseFragments("Netflix, Spotify Premium ,, ChatGPT Plus.")

	require.Len(t, fragments, 3)
	assert.Equal(t, []string{"Netflix", "Spotify Premium", "ChatGPT Plus"}, fragments)

	assert.Empty(t, parseFragments(""))
	assert.Empty(t, parseFragments(" , , "))
}
