package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories. The storefront groups the catalogue by these.
const (
	CategoryPain         = "pain"
	CategoryViennoiserie = "viennoiserie"
	CategoryGateau       = "gâteau"
	CategoryPatisserie   = "pâtisserie"
	CategoryAutre        = "autre"
)

// Categories lists every valid product category, in display order.
var Categories = []string{
	CategoryPain,
	CategoryViennoiserie,
	CategoryGateau,
	CategoryPatisserie,
	CategoryAutre,
}

// Product represents an item in the catalogue.
// Mutated only by staff; read by anyone.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
