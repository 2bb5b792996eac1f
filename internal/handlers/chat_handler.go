package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/httpresp"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/timezone"
)

type ChatHandler struct {
	db *gorm.DB
}

func NewChatHandler(db *gorm.DB) *ChatHandler {
	return &ChatHandler{db: db}
}

// ListConversations returns the caller's threads, most recently active
// first. Providers see their inbox, clients their outbox; the ordering key
// is bumped on every message, so polling clients re-sort for free.
func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID := currentUserID(c)

	q := h.db.Model(&models.Conversation{}).
		Preload("Client").
		Preload("Provider")

	if currentRole(c) == models.RoleProvider {
		provider, err := providerForUser(h.db, userID)
		if err != nil {
			httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
			return
		}
		q = q.Where("provider_id = ?", provider.ID)
	} else {
		q = q.Where("client_id = ?", userID)
	}

	var conversations []models.Conversation
	if err := q.Order("last_message_at desc").Find(&conversations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_conversations", "Nu am putut încărca conversațiile.")
		return
	}

	httpresp.List(c, conversations)
}

type OpenConversationRequest struct {
	ProviderID       uint  `json:"provider_id" binding:"required"`
	BookingRequestID *uint `json:"booking_request_id"`
}

// Open finds or creates the single thread between the calling client and a
// provider. The (client, provider) pair is unique, so a concurrent create
// falls back to the row the other request won.
func (h *ChatHandler) Open(c *gin.Context) {
	userID := currentUserID(c)

	var req OpenConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, req.ProviderID).Error; err != nil {
		httperr.NotFound(c, "provider_not_found", "Furnizorul nu a fost găsit.")
		return
	}

	if provider.UserID == userID {
		httperr.BadRequest(c, "self_conversation", "Nu poți deschide o conversație cu tine însuți.")
		return
	}

	if req.BookingRequestID != nil {
		var count int64
		h.db.Model(&models.BookingRequest{}).
			Where("id = ? AND client_id = ? AND provider_id = ?", *req.BookingRequestID, userID, provider.ID).
			Count(&count)
		if count == 0 {
			httperr.NotFound(c, "booking_not_found", "Cererea de rezervare nu a fost găsită.")
			return
		}
	}

	var conv models.Conversation
	err := h.db.
		Where("client_id = ? AND provider_id = ?", userID, provider.ID).
		First(&conv).Error

	if err == gorm.ErrRecordNotFound {
		conv = models.Conversation{
			ClientID:         userID,
			ProviderID:       provider.ID,
			BookingRequestID: req.BookingRequestID,
			LastMessageAt:    timezone.Now(),
		}
		err = h.db.Create(&conv).Error
		if err != nil && httperr.IsUniqueViolation(err) {
			err = h.db.
				Where("client_id = ? AND provider_id = ?", userID, provider.ID).
				First(&conv).Error
		}
	}
	if err != nil {
		httperr.Internal(c, "failed_to_open_conversation", "Nu am putut deschide conversația.")
		return
	}

	// A later booking can attach itself to an existing thread.
	if req.BookingRequestID != nil && conv.BookingRequestID == nil {
		conv.BookingRequestID = req.BookingRequestID
		h.db.Model(&conv).Update("booking_request_id", req.BookingRequestID)
	}

	c.JSON(http.StatusOK, conv)
}

// GetConversation returns one thread with its booking context, if any.
func (h *ChatHandler) GetConversation(c *gin.Context) {
	conv, ok := h.participantConversation(c)
	if !ok {
		return
	}

	resp := gin.H{"conversation": conv}

	if conv.BookingRequestID != nil {
		var br models.BookingRequest
		if err := h.db.First(&br, *conv.BookingRequestID).Error; err == nil {
			resp["booking_request"] = br
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ListMessages returns a thread's messages oldest first. ?after=<id> limits
// the response to messages newer than the given id, which is what the
// polling client sends on every tick.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	conv, ok := h.participantConversation(c)
	if !ok {
		return
	}

	q := h.db.Where("conversation_id = ?", conv.ID)

	if after := c.Query("after"); after != "" {
		afterID, err := strconv.ParseUint(after, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_after", "Parametrul after nu este valid.")
			return
		}
		q = q.Where("id > ?", afterID)
	}

	var messages []models.Message
	if err := q.Order("id asc").Find(&messages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Nu am putut încărca mesajele.")
		return
	}

	httpresp.List(c, messages)
}

type PostMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// PostMessage appends to the thread and bumps its ordering key.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	conv, ok := h.participantConversation(c)
	if !ok {
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		httperr.BadRequest(c, "empty_message", "Mesajul nu poate fi gol.")
		return
	}

	msg := models.Message{
		ConversationID: conv.ID,
		SenderID:       currentUserID(c),
		Body:           body,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_send_message", "Nu am putut trimite mesajul.")
		return
	}

	h.db.Model(conv).Update("last_message_at", msg.CreatedAt)

	c.JSON(http.StatusCreated, msg)
}

// participantConversation loads the :id conversation and rejects callers
// who are neither the client nor the owning provider. The membership check
// runs before anything about the thread is revealed.
func (h *ChatHandler) participantConversation(c *gin.Context) (*models.Conversation, bool) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_conversation_id", "Identificatorul conversației nu este valid.")
		return nil, false
	}

	var conv models.Conversation
	if err := h.db.Preload("Provider").First(&conv, id).Error; err != nil {
		httperr.NotFound(c, "conversation_not_found", "Conversația nu a fost găsită.")
		return nil, false
	}

	userID := currentUserID(c)
	if conv.ClientID != userID && conv.Provider.UserID != userID {
		httperr.Forbidden(c, "not_a_participant", "Nu faci parte din această conversație.")
		return nil, false
	}

	return &conv, true
}
