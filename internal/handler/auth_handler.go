package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/roofcompare/internal/auth"
	"github.com/octobees/roofcompare/internal/dto"
)

// AuthHandler exposes the admin login endpoint.
type AuthHandler struct {
	authenticator *auth.AdminAuthenticator
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authenticator *auth.AdminAuthenticator) *AuthHandler {
	return &AuthHandler{authenticator: authenticator}
}

// Login handles POST /auth/login requests.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return Error(c, http.StatusBadRequest, "email and password are required")
	}

	token, err := h.authenticator.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, http.StatusInternalServerError, "unable to authenticate")
	}

	return Success(c, http.StatusOK, "login successful", dto.LoginResponse{AccessToken: token})
}
