package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hidestyle/storefront/internal/auth"
	"github.com/hidestyle/storefront/internal/config"
	"github.com/hidestyle/storefront/internal/db"
	router "github.com/hidestyle/storefront/internal/http"
	"github.com/hidestyle/storefront/internal/http/handlers"
	rl "github.com/hidestyle/storefront/internal/http/rate_limiter"
	"github.com/hidestyle/storefront/internal/repo"
)

func init() {
	_ = godotenv.Load()
}

// @title Hidestyle Storefront API
// @version 1.0
// @description REST API for the Hidestyle product catalog and admin panel.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("could not connect to mongo: ", err)
	}
	defer client.Disconnect(context.Background())
	database := client.Database(cfg.MongoDB)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer rdb.Close()

	productRepo := repo.NewMongoProductRepository(database)
	handlers.SetProductRepo(productRepo)
	handlers.SetUserRepo(repo.NewMongoUserRepository(database))
	handlers.SetStatsRepo(repo.NewProductStatsRepository(productRepo))
	handlers.SetRefreshStore(auth.NewRefreshStore(rdb))

	r := router.NewRouter()
	log.Println("server running on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
