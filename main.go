package main

import (
	"fmt"
	"log"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/configs"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/routes"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	db := configs.DB()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Redis holds the session-scoped offer overlays
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, rdb, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
