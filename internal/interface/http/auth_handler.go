package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devfood/foodcourt/internal/application"
	"github.com/devfood/foodcourt/internal/interface/middleware"
	"github.com/devfood/foodcourt/pkg/helpers"
	"github.com/devfood/foodcourt/pkg/response"
	"github.com/devfood/foodcourt/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.SetToken(c, res.Token, res.ExpiresAt)
	response.Success(c, http.StatusOK, res, "login successful", map[string]any{"expires_at": res.ExpiresAt})
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetString(middleware.CtxUserEmailKey))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// Verify GET /api/verify validates the presented token and returns its claims.
func (h *AuthHandler) Verify(c *gin.Context) {
	token, _ := c.Cookie("access_token")
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing token", nil)
		return
	}
	claims, err := h.Svc.Verify(token)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"email":      claims.Email,
		"role":       claims.Role,
		"expires_at": claims.ExpiresAt.Time,
	}, "token valid", nil)
}
