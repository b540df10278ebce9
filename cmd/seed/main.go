package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bakery-catalog/internal/config"
	"bakery-catalog/internal/database"
	"bakery-catalog/internal/repository"
	"bakery-catalog/internal/seed"
)

// Seeds the products collection with the sample catalog.
// Run with: go run ./cmd/seed
func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURL)
	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clear existing products so the seed is repeatable.
	if _, err := db.Collection("products").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal("❌ Error clearing products:", err)
	}
	log.Println("✅ Cleared existing products")

	repo := repository.NewProductRepository(db)
	products := seed.Catalog()

	for i := range products {
		products[i].ApplyDefaults()
		if err := products[i].Validate(); err != nil {
			log.Fatalf("❌ Invalid seed product %q: %v", products[i].Name, err)
		}
		if err := repo.Create(ctx, &products[i]); err != nil {
			log.Fatalf("❌ Error inserting %q: %v", products[i].Name, err)
		}
	}

	log.Printf("✅ Inserted %d products", len(products))

	if err := client.Disconnect(ctx); err != nil {
		log.Fatal("❌ Error disconnecting:", err)
	}
	log.Println("✅ Database seeding completed!")
}
