package verification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"checkout-address-verify/internal/models"
)

// Handler exposes the verification endpoints.
type Handler struct {
	service  ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new verification handler.
func NewHandler(service ServiceInterface) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

// VerifyAddress handles POST /addresses/verify.
func (h *Handler) VerifyAddress(c echo.Context) error {
	var req models.VerifyAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	result, err := h.service.VerifyAddress(c.Request().Context(), req.Address, req.Options)
	if err != nil {
		return respondVerificationError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Autocomplete handles GET /addresses/autocomplete?query=...&limit=...
func (h *Handler) Autocomplete(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Query parameter is required"})
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.service.Autocomplete(c.Request().Context(), query, limit)
	if err != nil {
		return respondVerificationError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Geocode handles POST /addresses/geocode with {"address": "..."}.
func (h *Handler) Geocode(c echo.Context) error {
	var req struct {
		Address string `json:"address" validate:"required"`
		Limit   int    `json:"limit,omitempty"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Address parameter is required"})
	}

	items, err := h.service.Geocode(c.Request().Context(), req.Address, req.Limit)
	if err != nil {
		return respondVerificationError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// ReverseGeocode handles GET /addresses/reverse-geocode?lat=...&lng=...
func (h *Handler) ReverseGeocode(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid coordinates"})
	}

	items, err := h.service.ReverseGeocode(c.Request().Context(), lat, lng)
	if err != nil {
		return respondVerificationError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// respondVerificationError maps service errors onto HTTP statuses. Input
// problems and configuration gaps are blocking; provider failures and empty
// result sets are transient from the caller's point of view.
func respondVerificationError(c echo.Context, err error) error {
	var missing *models.MissingFieldError
	var geoErr *models.GeocodeError

	switch {
	case errors.As(err, &missing):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: missing.Error()})
	case errors.Is(err, models.ErrNotConfigured):
		return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Message: "Address verification is not configured"})
	case errors.Is(err, models.ErrNoMatch):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "No address matches found. Please check the address and try again."})
	case errors.As(err, &geoErr):
		c.Logger().Error("verification: geocode failure: ", err)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{Message: "Address lookup service is temporarily unavailable"})
	default:
		c.Logger().Error("verification: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to verify address"})
	}
}
