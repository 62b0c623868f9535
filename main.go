package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apparel-backend/config"
	"apparel-backend/handlers"
	"apparel-backend/store"
)

func main() {
	cfg := config.Load()

	client, err := store.Connect(cfg.MongoURL)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting MongoDB client: %v", err)
		}
	}()

	db := client.Database(cfg.DBName)

	users := store.NewMongoUserStore(db)
	products := store.NewMongoProductStore(db)
	carts := store.NewMongoCartStore(db)
	orders := store.NewMongoOrderStore(db)
	categories := store.NewMongoCategoryStore(db)
	wishlists := store.NewMongoWishlistStore(db)

	secret := []byte(cfg.JWTSecret)

	router := handlers.NewRouter(handlers.Deps{
		Users:      users,
		Secret:     secret,
		UploadDir:  cfg.UploadDir,
		Auth:       handlers.NewAuthHandler(users, secret),
		Products:   handlers.NewProductHandler(products, cfg.UploadDir),
		Cart:       handlers.NewCartHandler(carts),
		Orders:     handlers.NewOrderHandler(orders, carts),
		Categories: handlers.NewCategoryHandler(categories),
		Wishlist:   handlers.NewWishlistHandler(wishlists),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server exiting")
}
