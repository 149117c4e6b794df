package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/junhobyun/customer-admin/internal/api/metrics"
	"github.com/junhobyun/customer-admin/internal/api/middleware"
	"github.com/junhobyun/customer-admin/internal/core/domain"
	"github.com/junhobyun/customer-admin/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	denylist    ports.TokenDenylist
}

func NewAuthHandler(authService ports.AuthService, denylist ports.TokenDenylist) *AuthHandler {
	return &AuthHandler{authService: authService, denylist: denylist}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// Login authenticates a username/password pair and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid username or password"})
		}
		// Store failure; the central error handler logs it and hides detail.
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: account.Username,
		Role:     account.Role,
	})
}

// Logout revokes the presented token for the remainder of its lifetime. The
// route is registered only when a denylist backend is configured.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("token").(string)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	expiry, ok := middleware.TokenExpiry(c)
	ttl := time.Hour
	if ok {
		ttl = time.Until(expiry)
	}
	if ttl > 0 {
		if err := h.denylist.Revoke(c.Request().Context(), token, ttl); err != nil {
			return err
		}
		metrics.TokensRevokedTotal.Inc()
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
