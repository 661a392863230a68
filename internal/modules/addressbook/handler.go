package addressbook

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"checkout-address-verify/internal/models"
	"checkout-address-verify/pkg/utils"
)

// Handler exposes the address-book endpoints. All of them require an
// authenticated user.
type Handler struct {
	service  ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new address-book handler.
func NewHandler(service ServiceInterface) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

// ListAddresses handles GET /profile/addresses?type=shipping|billing.
func (h *Handler) ListAddresses(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	addresses, err := h.service.ListByType(c.Request().Context(), userID, c.QueryParam("type"))
	if err != nil {
		c.Logger().Error("Handler.ListAddresses: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to list addresses"})
	}
	if addresses == nil {
		addresses = []models.SavedAddress{}
	}
	return c.JSON(http.StatusOK, addresses)
}

// GetDefaultAddress handles GET /profile/addresses/default?type=...
func (h *Handler) GetDefaultAddress(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	addr, err := h.service.GetDefault(c.Request().Context(), userID, c.QueryParam("type"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "No default address set"})
		}
		c.Logger().Error("Handler.GetDefaultAddress: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to fetch default address"})
	}
	return c.JSON(http.StatusOK, addr)
}

// SaveAddress handles POST /profile/addresses.
func (h *Handler) SaveAddress(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.SaveAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	created, err := h.service.Save(c.Request().Context(), userID, req)
	if err != nil {
		c.Logger().Error("Handler.SaveAddress: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to save address"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAddress handles PUT /profile/addresses/:addressId.
func (h *Handler) UpdateAddress(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}
	addressID, err := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid address id"})
	}

	var req models.UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), userID, addressID, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Address not found"})
		}
		c.Logger().Error("Handler.UpdateAddress: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update address"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAddress handles DELETE /profile/addresses/:addressId.
func (h *Handler) DeleteAddress(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}
	addressID, err := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid address id"})
	}

	if err := h.service.Delete(c.Request().Context(), userID, addressID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Address not found"})
		}
		c.Logger().Error("Handler.DeleteAddress: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to delete address"})
	}
	return c.NoContent(http.StatusNoContent)
}

// SetDefaultAddress handles PUT /profile/addresses/:addressId/default.
func (h *Handler) SetDefaultAddress(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}
	addressID, err := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid address id"})
	}

	addr, err := h.service.SetDefault(c.Request().Context(), userID, addressID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Address not found"})
		}
		c.Logger().Error("Handler.SetDefaultAddress: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to set default address"})
	}
	return c.JSON(http.StatusOK, addr)
}
