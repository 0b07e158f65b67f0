package api

import (
	"errors"
	"net/http"

	"affiliate_portal/internal/repository"
	"affiliate_portal/internal/service"
	"affiliate_portal/pkg/auth"
	"affiliate_portal/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type authRoutes struct {
	accounts service.AccountServiceI
	sessions *auth.SessionManager
}

func NewAuthRoutes(handler *gin.RouterGroup, accounts service.AccountServiceI, sessions *auth.SessionManager) {
	r := &authRoutes{accounts: accounts, sessions: sessions}
	h := handler.Group("/auth")
	{
		h.POST("/login", r.Login)
		h.POST("/logout", r.Logout)
		h.POST("/recover", r.Recover)
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Subject string `json:"subject"`
	Admin   bool   `json:"admin"`
}

func (r *authRoutes) Login(c *gin.Context) {
	log := logger.Logger()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	principal, err := r.accounts.Authenticate(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
			return
		}
		log.Error("failed to authenticate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := r.sessions.Issue(principal)
	if err != nil {
		log.Error("failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Subject: principal.Subject,
		Admin:   principal.Admin,
	})
}

// Logout only acknowledges; session tokens are stateless and the client
// discards its copy.
func (r *authRoutes) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

type RecoverRequest struct {
	LookupType string `json:"lookup_type" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

func (r *authRoutes) Recover(c *gin.Context) {
	log := logger.Logger()

	var req RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	switch req.LookupType {
	case "username":
		email, err := r.accounts.RecoverEmail(c.Request.Context(), req.Value)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Username not found."})
				return
			}
			log.Error("failed to recover email", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": email})
	case "email":
		username, err := r.accounts.RecoverUsername(c.Request.Context(), req.Value)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Email not found."})
				return
			}
			log.Error("failed to recover username", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": username})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "lookup_type must be username or email"})
	}
}
