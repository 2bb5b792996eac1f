package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/middleware"
	"github.com/Dmast1/bookingart-api/internal/models"
)

func currentUserID(c *gin.Context) uint {
	id, _ := c.MustGet(middleware.ContextUserID).(uint)
	return id
}

func currentRole(c *gin.Context) models.Role {
	role, _ := c.MustGet(middleware.ContextUserRole).(models.Role)
	return role
}

// providerForUser resolves the provider profile owned by the authenticated
// user. Provider-scoped routes call it after RequireRole, so a miss means
// the profile was never filled in, not a permission problem.
func providerForUser(db *gorm.DB, userID uint) (*models.Provider, error) {
	var p models.Provider
	if err := db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
