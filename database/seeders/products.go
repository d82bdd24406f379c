package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// seedProducts is the starter catalogue. Prices and descriptions come from
// the bakery's launch menu.
var seedProducts = []models.Product{
	// Cookies
	{
		Name:        "Cookie XL Chocolat",
		Description: "Cookie géant aux pépites de chocolat noir, moelleux à l'intérieur et croustillant à l'extérieur",
		Price:       5.00,
		Category:    models.CategoryPatisserie,
		ImageURL:    "/cookies.jpeg",
		Available:   true,
	},
	{
		Name:        "Cookie XL Double Chocolat",
		Description: "Cookie au chocolat intense avec pépites de chocolat blanc et noir",
		Price:       5.50,
		Category:    models.CategoryPatisserie,
		ImageURL:    "/cookies2.jpeg",
		Available:   true,
	},
	// Crêpes
	{
		Name:        "Crêpe Nature",
		Description: "Crêpe traditionnelle légère et fondante, parfaite avec du sucre ou de la confiture",
		Price:       3.50,
		Category:    models.CategoryAutre,
		ImageURL:    "/crepes.jpeg",
		Available:   true,
	},
	{
		Name:        "Crêpe Nutella Banane",
		Description: "Crêpe garnie de Nutella onctueux et de tranches de banane fraîche",
		Price:       5.00,
		Category:    models.CategoryAutre,
		ImageURL:    "/crepes.jpeg",
		Available:   true,
	},
	// Gâteaux
	{
		Name:        "Gâteau Personnalisé",
		Description: "Gâteau sur mesure pour vos événements spéciaux - anniversaires, mariages, baptêmes",
		Price:       45.00,
		Category:    models.CategoryGateau,
		ImageURL:    "/gateau.jpeg",
		Available:   true,
	},
	{
		Name:        "Cake Design Thématique",
		Description: "Création artistique personnalisée selon votre thème - design unique garanti",
		Price:       65.00,
		Category:    models.CategoryGateau,
		ImageURL:    "/gateau2.jpeg",
		Available:   true,
	},
}

// SeedProducts wipes the products collection and inserts the starter
// catalogue.
func SeedProducts(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("products")

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(seedProducts))
	for _, p := range seedProducts {
		p.CreatedAt = time.Now()
		docs = append(docs, p)
	}

	_, err := coll.InsertMany(ctx, docs)
	return err
}
