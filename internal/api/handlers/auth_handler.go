package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/api/middleware"
	"github.com/jaewonk/gpu-admin-go/internal/config"
	"github.com/jaewonk/gpu-admin-go/pkg/response"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// checkAdminPassword compares against the bcrypt hash when one is configured,
// otherwise falls back to a plaintext comparison for development setups.
func checkAdminPassword(password string) bool {
	if config.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)) == nil
	}
	return password == config.AdminPassword
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Admin password"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid password"
// @Failure 500 {object} response.ErrorResponse "Failed to generate token"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if !checkAdminPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid password"})
		return
	}

	token, err := middleware.GenerateToken(req.Username, true, time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		3600,
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		Username: req.Username,
		IsAdmin:  true,
	})
}

// Logout godoc
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// AuthStatusHandler returns the status of the caller's token (valid/expired)
func AuthStatusHandler(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "valid", "username": claims.Username, "is_admin": claims.IsAdmin})
}
