package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"checkout-address-verify/internal/api"
	"checkout-address-verify/internal/config"
	"checkout-address-verify/internal/models"
	"checkout-address-verify/internal/modules/addressbook"
	"checkout-address-verify/internal/modules/verification"
	"checkout-address-verify/pkg/geocode"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	e := echo.New()
	e.HideBanner = true

	// 2. --- Middleware ---
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 3. --- Database Connection (address book storage) ---
	dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to parse database configuration: %v", err)
	}

	dbPool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		log.Fatalf("Unable to create connection pool: %v", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}

	// 4. --- Geocoding collaborator ---
	hereClient := geocode.NewClient(cfg.HereAPIKey, time.Duration(cfg.HereTimeoutSeconds)*time.Second)
	if !hereClient.IsConfigured() {
		log.Println("WARNING: HERE_API_KEY is not set; verification endpoints will refuse requests")
	}

	// 5. --- Dependency Injection ---
	verifyDefaults := models.DefaultVerificationArgs()
	verifyDefaults.VerificationLevel = cfg.VerifyLevel
	verifyDefaults.MinConfidence = cfg.VerifyMinConfidence
	verifyDefaults.RequirePostalCode = cfg.VerifyRequirePostalCode
	verifyDefaults.RequireHouseNumber = cfg.VerifyRequireHouseNumber

	verificationService := verification.NewService(hereClient, verifyDefaults)
	verificationHandler := verification.NewHandler(verificationService)

	addressRepo := addressbook.NewRepository(dbPool)
	addressService := addressbook.NewService(addressRepo)
	addressHandler := addressbook.NewHandler(addressService)

	// 6. --- Routes ---
	api.SetupRoutes(e, verificationHandler, addressHandler, cfg.JWTSecret)

	// 7. --- Start server with graceful shutdown ---
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server, an error occurred: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal("Server forced to shutdown: ", err)
	}
	log.Println("Server exiting")
}
