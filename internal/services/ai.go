package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

// FallbackInsight est l'analyse affichée quand l'assistant IA ne répond pas.
const FallbackInsight = "Cet abonnement fait partie des plus demandés de sa catégorie. " +
	"Bon rapport qualité-prix d'après les avis clients."

// FallbackSuggestions sont les pistes proposées quand l'assistant IA ne
// répond pas. Des noms sûrs, toujours présents au catalogue.
var FallbackSuggestions = []string{"Netflix", "Spotify", "ChatGPT"}

// geminiBaseURL est surchargée dans les tests.
var geminiBaseURL = "https://generativelanguage.googleapis.com"

var aiClient = &http.Client{Timeout: 12 * time.Second}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GetSmartRecommendations demande à l'assistant IA des pistes de produits
// complémentaires au panier. Renvoie des fragments de noms à rapprocher du
// catalogue. En cas d'échec, quel qu'il soit, les pistes par défaut sont
// renvoyées : jamais d'erreur côté visiteur.
func GetSmartRecommendations(ctx context.Context, interests string) []string {
	prompt := fmt.Sprintf(
		"Un client a dans son panier : %s. Propose 3 autres abonnements numériques complémentaires. "+
			"Réponds uniquement par les noms des produits, séparés par des virgules, sans phrase.",
		interests,
	)

	text, err := callGemini(ctx, prompt, 0.7, 64)
	if err != nil {
		log.Printf("⚠️ Assistant IA indisponible (recommandations): %v", err)
		return FallbackSuggestions
	}

	fragments := parseFragments(text)
	if len(fragments) == 0 {
		return FallbackSuggestions
	}
	return fragments
}

// GetProductInsight demande à l'assistant IA une courte analyse d'achat
// pour un produit. En cas d'échec, l'analyse par défaut est renvoyée.
func GetProductInsight(ctx context.Context, product models.Product) string {
	prompt := fmt.Sprintf(
		"Rédige une analyse d'achat courte (2 phrases maximum, en français) pour l'abonnement suivant. "+
			"Nom : %s. Prix : %.2f€ au lieu de %.2f€. Note : %.1f/5 (%d avis). Points forts : %s. "+
			"Ton commercial mais honnête, sans liste à puces.",
		product.Name, product.Price, product.OriginalPrice,
		product.Rating, product.Reviews, strings.Join(product.Benefits, ", "),
	)

	text, err := callGemini(ctx, prompt, 0.6, 128)
	if err != nil {
		log.Printf("⚠️ Assistant IA indisponible (analyse %s): %v", product.ID, err)
		return FallbackInsight
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackInsight
	}
	return text
}

// callGemini envoie un prompt à l'API Gemini et renvoie le texte du premier
// candidat.
func callGemini(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY non configurée")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", geminiBaseURL, model, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := aiClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("statut %d: %s", resp.StatusCode, string(raw))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("réponse vide de l'assistant")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// parseFragments découpe la réponse de l'assistant en fragments de noms.
func parseFragments(text string) []string {
	parts := strings.Split(text, ",")
	fragments := make([]string, 0, len(parts))
	for _, part := range parts {
		fragment := strings.TrimSpace(part)
		fragment = strings.Trim(fragment, ".")
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}
