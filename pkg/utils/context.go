package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"checkout-address-verify/internal/models"
)

// ExtractUserInfo pulls the authenticated user's ID and email out of the
// echo context, where the JWT middleware placed them. Returns an HTTP error
// response when the request somehow reached a protected handler without
// passing authentication.
func ExtractUserInfo(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get("userID").(string)
	email, _ = c.Get("userEmail").(string)
	if userID == "" {
		return "", "", c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Authentication required"})
	}
	return userID, email, nil
}
