package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopredat-blip/Viralyn-website/internal/database"
	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

// SignedURLTTL est la durée de validité des URLs d'images signées.
const SignedURLTTL = 1 * time.Hour

// GenerateSignedURL génère une URL signée avec expiration pour un objet du
// bucket images.
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	reqParams := make(url.Values)

	// Nettoie une éventuelle URL complète pour ne garder que la clé objet
	key := strings.TrimPrefix(objectPath, "http://"+os.Getenv("MINIO_ENDPOINT")+"/"+bucket+"/")

	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, key, duration, reqParams)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}

// ResolveImageURL transforme la clé image d'un produit en URL servable.
// Une URL déjà absolue est renvoyée telle quelle. Avec MinIO, la clé devient
// une URL signée. Sans MinIO, on retombe sur l'URL publique du bucket, ou
// sur la clé brute si rien n'est configuré. Jamais d'échec côté visiteur.
func ResolveImageURL(ctx context.Context, imageKey string) string {
	if imageKey == "" {
		return ""
	}
	if strings.HasPrefix(imageKey, "http://") || strings.HasPrefix(imageKey, "https://") {
		return imageKey
	}

	if database.MinIO != nil {
		if signed, err := GenerateSignedURL(ctx, imageKey, SignedURLTTL); err == nil {
			return signed
		}
	}

	endpoint := os.Getenv("MINIO_ENDPOINT")
	bucket := os.Getenv("MINIO_BUCKET")
	if endpoint == "" || bucket == "" {
		return imageKey
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, bucket, imageKey)
}

// ResolveProductImages remplace les clés images d'une liste de produits par
// des URLs servables.
func ResolveProductImages(ctx context.Context, products []models.Product) []models.Product {
	for i := range products {
		products[i].Image = ResolveImageURL(ctx, products[i].Image)
	}
	return products
}
