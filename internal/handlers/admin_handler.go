package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/dto"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/httpresp"
	"github.com/Dmast1/bookingart-api/internal/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	q := h.db.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var users []models.User
	if err := q.Order("id desc").Limit(200).Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Nu am putut încărca utilizatorii.")
		return
	}

	out := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.AdminUserDTO{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	httpresp.List(c, out)
}

func (h *AdminHandler) ListProviders(c *gin.Context) {
	var providers []models.Provider
	if err := h.db.
		Preload("User").
		Order("id desc").
		Limit(200).
		Find(&providers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_providers", "Nu am putut încărca furnizorii.")
		return
	}

	httpresp.List(c, providers)
}

// AuditLogs pages through the audit trail, newest first, optionally
// filtered by action or entity.
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	q := h.db.Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var total int64
	q.Count(&total)

	var logs []models.AuditLog
	if err := q.
		Order("id desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Nu am putut încărca jurnalul de audit.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     logs,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}
