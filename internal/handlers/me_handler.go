package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Utilizatorul nu a fost găsit.")
		return
	}

	resp := gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	}

	if provider, err := providerForUser(h.db, userID); err == nil {
		resp["provider"] = provider
	}

	c.JSON(http.StatusOK, resp)
}

type UpdateMeRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := currentUserID(c)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Utilizatorul nu a fost găsit.")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	user.Phone = req.Phone

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Nu am putut salva modificările.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	})
}

type LinkTelegramRequest struct {
	ChatID int64 `json:"chat_id" binding:"required"`
}

// LinkTelegram stores the chat id booking notifications are sent to.
// A zero id (never sent by Telegram) means "not linked".
func (h *MeHandler) LinkTelegram(c *gin.Context) {
	userID := currentUserID(c)

	var req LinkTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("telegram_chat_id", req.ChatID).Error; err != nil {
		httperr.Internal(c, "failed_to_link_telegram", "Nu am putut lega contul de Telegram.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"linked": true})
}
