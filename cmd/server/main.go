package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/shopredat-blip/Viralyn-website/internal/catalog"
	"github.com/shopredat-blip/Viralyn-website/internal/config"
	"github.com/shopredat-blip/Viralyn-website/internal/database"
	"github.com/shopredat-blip/Viralyn-website/internal/handlers/product"
	"github.com/shopredat-blip/Viralyn-website/internal/handlers/user"
	"github.com/shopredat-blip/Viralyn-website/internal/middleware"
	"github.com/shopredat-blip/Viralyn-website/internal/routes"
	"github.com/shopredat-blip/Viralyn-website/internal/services"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	middleware.InitSessionStore()

	// Catalogue embarqué, seule source de vérité des produits
	products, err := catalog.LoadSeed()
	if err != nil {
		log.Fatalf("❌ Impossible de charger le catalogue: %v", err)
	}
	store := catalog.NewStore(products)
	log.Printf("✅ Catalogue chargé: %d produits", store.Len())

	product.Catalog = store
	user.Catalog = store

	// Rejouer les avis persistés avant d'ouvrir l'API
	services.ReplayReviews(store)

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🚀 Serveur Viralyn lancé sur le port", port)
	r.Run(":" + port)
}
