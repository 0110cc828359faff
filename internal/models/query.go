package models

import "math"

// SortKey est l'énumération fermée des ordres de tri du catalogue.
type SortKey string

const (
	SortFeatured  SortKey = "featured"   // ordre du catalogue, aucun comparateur
	SortPriceLow  SortKey = "price-low"  // prix croissant
	SortPriceHigh SortKey = "price-high" // prix décroissant
	SortRating    SortKey = "rating"     // note décroissante
	SortName      SortKey = "name"       // nom en ordre lexical croissant
)

// ParseSortKey normalise un ordre de tri reçu de l'API.
// Toute valeur inconnue retombe sur l'ordre "featured".
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortName:
		return SortKey(s)
	}
	return SortFeatured
}

// QuerySpec est la combinaison éphémère de filtres et de tri qui produit
// une vue du catalogue. Jamais persistée : elle se reconstruit à chaque
// requête. Les prédicats sont conjonctifs (voir catalog.FilterAndSort).
type QuerySpec struct {
	SearchText  string
	Category    string // une Category valide, ou CategoryAll
	MaxPrice    float64
	MinRating   float64
	InStockOnly bool
	Sort        SortKey
}

// DefaultQuerySpec retourne la spec neutre : tous les produits passent.
func DefaultQuerySpec() QuerySpec {
	return QuerySpec{
		Category: CategoryAll,
		MaxPrice: math.MaxFloat64,
		Sort:     SortFeatured,
	}
}
