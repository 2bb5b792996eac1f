package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/media"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/storage"
)

// 10 MB, before recompression.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	db    *gorm.DB
	store *storage.MediaStore
}

func NewUploadHandler(db *gorm.DB, store *storage.MediaStore) *UploadHandler {
	return &UploadHandler{db: db, store: store}
}

// Cover accepts a multipart "image" field, recompresses it to WebP and sets
// it as the provider's cover image.
func (h *UploadHandler) Cover(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	url, ok := h.uploadImage(c, "covers/"+provider.Slug)
	if !ok {
		return
	}

	if err := h.db.Model(provider).Update("cover_image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_cover", "Nu am putut salva imaginea de copertă.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Poster uploads an event poster for one of the provider's own events.
func (h *UploadHandler) Poster(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_event_id", "Identificatorul evenimentului nu este valid.")
		return
	}

	var ev models.Event
	if err := h.db.
		Where("id = ? AND provider_id = ?", id, provider.ID).
		First(&ev).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Evenimentul nu a fost găsit.")
		return
	}

	url, ok := h.uploadImage(c, "posters/"+ev.Slug)
	if !ok {
		return
	}

	if err := h.db.Model(&ev).Update("poster_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_poster", "Nu am putut salva afișul.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *UploadHandler) uploadImage(c *gin.Context, prefix string) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Lipsește fișierul imagine.")
		return "", false
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Imaginea depășește limita de 10 MB.")
		return "", false
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Nu am putut citi imaginea.")
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Nu am putut citi imaginea.")
		return "", false
	}

	converted, err := media.ToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Fișierul nu este o imagine JPEG sau PNG validă.")
		return "", false
	}

	key := prefix + "-" + uuid.NewString() + ".webp"
	url, err := h.store.Put(c.Request.Context(), key, converted, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Nu am putut încărca imaginea.")
		return "", false
	}

	return url, true
}
