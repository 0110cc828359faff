package catalog

import (
	"sync"

	"github.com/shopredat-blip/Viralyn-website/internal/models"
)

// Store garde le catalogue en mémoire. Le catalogue est figé au démarrage,
// seuls les avis et la note d'un produit évoluent ensuite. Toutes les
// méthodes sont sûres en accès concurrent.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int
}

// NewStore construit le store à partir des produits chargés au démarrage.
func NewStore(products []models.Product) *Store {
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	return &Store{
		products: products,
		index:    index,
	}
}

// Products renvoie une copie du catalogue dans l'ordre de référence.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

// Get renvoie un produit par identifiant.
func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// Len renvoie le nombre de produits du catalogue.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// AddReview applique un avis au produit visé et renvoie son nouvel état.
// Renvoie false si le produit n'existe pas ou si l'avis est refusé
// (commentaire vide). La liste d'avis est reconstruite à chaque ajout,
// les instantanés déjà distribués restent donc valables.
func (s *Store) AddReview(productID string, review models.Review) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[productID]
	if !ok {
		return models.Product{}, false
	}

	updated, applied := ApplyReview(s.products[i], review)
	if !applied {
		return s.products[i], false
	}

	s.products[i] = updated
	return updated, true
}
