package api

import (
	"errors"
	"net/http"
	"strings"

	"affiliate_portal/internal/middleware"
	"affiliate_portal/internal/model"
	"affiliate_portal/internal/repository"
	"affiliate_portal/internal/service"
	"affiliate_portal/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type userRoutes struct {
	accounts  service.AccountServiceI
	affiliate service.AffiliateServiceI
}

func NewUserRoutes(handler *gin.RouterGroup, accounts service.AccountServiceI, affiliate service.AffiliateServiceI, authz *middleware.Authorization) {
	r := &userRoutes{accounts: accounts, affiliate: affiliate}
	h := handler.Group("/users")
	h.POST("", r.Register)

	me := h.Group("/me")
	me.Use(authz.RequireSession())
	{
		me.GET("/dashboard", r.Dashboard)
		me.GET("/training", r.Training)
		me.GET("/queue", r.Queue)
		me.GET("/upgrade", r.AvailableUpgrades)
		me.POST("/upgrade", r.Upgrade)
		me.PATCH("/credentials", r.UpdateCredentials)
	}
}

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required"`
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Referrer *string `json:"referrer"`
}

func (r *userRoutes) Register(c *gin.Context) {
	log := logger.Logger()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	username := strings.TrimSpace(req.Username)
	err := r.affiliate.RegisterAndEnqueue(c.Request.Context(), req.Email, username, req.Password, req.Referrer)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email or username already registered."})
			return
		}
		log.Error("failed to register customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"email":    req.Email,
		"username": username,
	})
}

func (r *userRoutes) Dashboard(c *gin.Context) {
	log := logger.Logger()

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		log.Error("principal not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	dashboard, err := r.accounts.Dashboard(c.Request.Context(), principal.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no customer associated with this session"})
			return
		}
		log.Error("failed to build dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (r *userRoutes) Training(c *gin.Context) {
	guides := r.accounts.TrainingGuides(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"guides": guides})
}

func (r *userRoutes) Queue(c *gin.Context) {
	log := logger.Logger()

	entries, err := r.accounts.QueueEntries(c.Request.Context())
	if err != nil {
		log.Error("failed to get queue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if entries == nil {
		entries = []model.QueueEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"queue": entries})
}

func (r *userRoutes) AvailableUpgrades(c *gin.Context) {
	log := logger.Logger()

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		log.Error("principal not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	options, err := r.accounts.AvailableUpgrades(c.Request.Context(), principal.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no customer associated with this session"})
			return
		}
		log.Error("failed to list upgrades", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"packages": options})
}

type UpgradeRequest struct {
	PackageLevel int `json:"package_level" binding:"required"`
}

func (r *userRoutes) Upgrade(c *gin.Context) {
	log := logger.Logger()

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		log.Error("principal not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := r.affiliate.UpgradeAndReward(c.Request.Context(), principal.Subject, req.PackageLevel)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidUpgrade):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid upgrade selection."})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no customer associated with this session"})
		default:
			log.Error("failed to upgrade package", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package_level": req.PackageLevel,
	})
}

type UpdateCredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *userRoutes) UpdateCredentials(c *gin.Context) {
	log := logger.Logger()

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		log.Error("principal not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var req UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := r.accounts.UpdateCredentials(c.Request.Context(), principal.Subject, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken."})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no customer associated with this session"})
		default:
			log.Error("failed to update credentials", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "credentials updated"})
}
