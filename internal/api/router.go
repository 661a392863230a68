package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"checkout-address-verify/internal/api/middleware"
	"checkout-address-verify/internal/modules/addressbook"
	"checkout-address-verify/internal/modules/verification"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	verificationHandler *verification.Handler,
	addressHandler *addressbook.Handler,
	jwtSecret string,
) {
	authMiddleware := middleware.JWTAuth(jwtSecret)

	// --- Public Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Checkout address verification service"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Address verification and geocoding pass-throughs are used by the
	// checkout form before the shopper logs in, so they stay public.
	addressGroup := e.Group("/addresses")
	{
		addressGroup.POST("/verify", verificationHandler.VerifyAddress)
		addressGroup.GET("/autocomplete", verificationHandler.Autocomplete)
		addressGroup.POST("/geocode", verificationHandler.Geocode)
		addressGroup.GET("/reverse-geocode", verificationHandler.ReverseGeocode)
	}

	// --- Address Book (authenticated) ---
	profileGroup := e.Group("/profile", authMiddleware)
	{
		profileGroup.GET("/addresses", addressHandler.ListAddresses)
		profileGroup.GET("/addresses/default", addressHandler.GetDefaultAddress)
		profileGroup.POST("/addresses", addressHandler.SaveAddress)
		profileGroup.PUT("/addresses/:addressId", addressHandler.UpdateAddress)
		profileGroup.DELETE("/addresses/:addressId", addressHandler.DeleteAddress)
		profileGroup.PUT("/addresses/:addressId/default", addressHandler.SetDefaultAddress)
	}
}
