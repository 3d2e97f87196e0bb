package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"shop-backend/routes"
	"shop-backend/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	// Connect to MongoDB. A missing or unreachable store must not kill the
	// process: data endpoints degrade to 503 and /test reports the state.
	var st store.Store
	if mongoStore := connectStore(); mongoStore != nil {
		st = mongoStore
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(r, st)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func connectStore() *store.MongoStore {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		log.Println("⚠️ DATABASE_URL not set, starting without database")
		return nil
	}
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "shop"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoStore, err := store.Connect(ctx, uri, name)
	if err != nil {
		log.Printf("❌ Database connection failed: %v", err)
		return nil
	}
	log.Printf("✅ Connected to MongoDB database %q", mongoStore.Name())
	return mongoStore
}
