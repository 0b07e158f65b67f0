package api

import (
	"net/http"
	"strconv"

	"affiliate_portal/internal/middleware"
	"affiliate_portal/internal/model"
	"affiliate_portal/internal/service"
	"affiliate_portal/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type adminRoutes struct {
	admin service.AdminServiceI
}

func NewAdminRoutes(handler *gin.RouterGroup, admin service.AdminServiceI, authz *middleware.Authorization) {
	r := &adminRoutes{admin: admin}
	h := handler.Group("/admin")
	h.Use(authz.RequireSession(), authz.AdminOnly())
	{
		h.GET("/overview", r.Overview)
		h.DELETE("/users/:email", r.RemoveCustomer)
		h.PUT("/packages/:level", r.UpdatePackage)
		h.DELETE("/queue/:email", r.RemoveFromQueue)
		h.POST("/commissions/:email/reset", r.ResetCommissions)
	}
}

func (r *adminRoutes) Overview(c *gin.Context) {
	log := logger.Logger()

	overview, err := r.admin.Overview(c.Request.Context())
	if err != nil {
		log.Error("failed to build admin overview", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (r *adminRoutes) RemoveCustomer(c *gin.Context) {
	log := logger.Logger()

	email := c.Param("email")
	if err := r.admin.RemoveCustomer(c.Request.Context(), email); err != nil {
		log.Error("failed to remove customer", zap.Error(err), zap.String("email", email))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

type UpdatePackageRequest struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price"`
	GuideCount int     `json:"guide_count"`
}

func (r *adminRoutes) UpdatePackage(c *gin.Context) {
	log := logger.Logger()

	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package level"})
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pkg := model.Package{
		Name:       req.Name,
		Price:      req.Price,
		GuideCount: req.GuideCount,
	}
	if err := r.admin.UpdatePackage(c.Request.Context(), level, pkg); err != nil {
		log.Error("failed to update package", zap.Error(err), zap.Int("level", level))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"level":   level,
		"package": pkg,
	})
}

func (r *adminRoutes) RemoveFromQueue(c *gin.Context) {
	log := logger.Logger()

	email := c.Param("email")
	if err := r.admin.RemoveFromQueue(c.Request.Context(), email); err != nil {
		log.Error("failed to remove from queue", zap.Error(err), zap.String("email", email))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (r *adminRoutes) ResetCommissions(c *gin.Context) {
	log := logger.Logger()

	email := c.Param("email")
	if err := r.admin.ResetCommissions(c.Request.Context(), email); err != nil {
		log.Error("failed to reset commissions", zap.Error(err), zap.String("email", email))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
