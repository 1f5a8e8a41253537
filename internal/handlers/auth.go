package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/config"
	"github.com/hiveproductions/hive/backend/internal/middleware"
	"github.com/hiveproductions/hive/backend/internal/services"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(db, &cfg.JWT),
	}
}

// Login handles user login
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Signup registers a new user against an organization signup code
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Signup(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// VerifyCode checks a signup code without creating anything
// POST /auth/verify-code
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req services.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	org, err := h.authService.VerifySignupCode(req.SignupCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"valid":             true,
		"organization_id":   org.ID,
		"organization_name": org.Name,
	})
}

// GetCurrentUser returns the current logged-in user
// GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
