// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-storefront/controllers"
	"go-storefront/models"
	"go-storefront/routes"
	"go-storefront/storage"
	"go-storefront/store"
	"go-storefront/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Build the store from the seed catalog
	st := store.New(models.SeedProducts())

	// Open the session slot and restore any prior session before serving
	dbPath := os.Getenv("SESSION_DB_PATH")
	if dbPath == "" {
		dbPath = "data/storefront.db"
	}
	sessions, err := storage.OpenSQLite(dbPath)
	if err != nil {
		logger.Warn("session store unavailable, running in-memory only", zap.Error(err))
	} else {
		defer sessions.Close()
		storage.Restore(st, sessions, logger)
		storage.Watch(st, sessions, logger)
	}

	// Initialize controllers
	userController := controllers.NewUserController(st, logger)
	productController := controllers.NewProductController(st)
	cartController := controllers.NewCartController(st)
	checkoutController := controllers.NewCheckoutController(st, logger, checkoutDelay())
	adminController := controllers.NewAdminController(st)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, cartController, checkoutController, adminController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Storefront is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func checkoutDelay() time.Duration {
	if ms, err := strconv.Atoi(os.Getenv("CHECKOUT_DELAY_MS")); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return time.Second
}
