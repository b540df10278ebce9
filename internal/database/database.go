package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect dials MongoDB and verifies the connection with a ping. An
// unreachable database is logged but not fatal: the server keeps running so
// it can recover once the database becomes reachable, and individual
// requests report their own store errors in the meantime. Only a malformed
// URI aborts startup, since that can never heal on its own.
func Connect(uri string) *mongo.Client {
	if uri == "" {
		log.Println("⚠️ MONGO_URL is not set, falling back to mongodb://localhost:27017")
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ Invalid MongoDB configuration:", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("❌ MongoDB connection error:", err)
		log.Println("💡 Make sure:")
		log.Println("   1. .env file exists with MONGO_URL")
		log.Println("   2. MongoDB Atlas IP is whitelisted")
		log.Println("   3. Username and password are correct")
		return client
	}

	log.Println("✅ MongoDB Connected Successfully")
	return client
}
