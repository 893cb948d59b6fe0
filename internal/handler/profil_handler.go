package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuusmannMedia/liguster/internal/usecase"
)

// ProfilHandler exposes the caller's own profile.
type ProfilHandler struct {
	profil *usecase.ProfilUseCase
}

func NewProfilHandler(profil *usecase.ProfilUseCase) *ProfilHandler {
	return &ProfilHandler{profil: profil}
}

// GetProfil GET /profil
func (h *ProfilHandler) GetProfil(c *gin.Context) {
	user, err := h.profil.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfilRequest struct {
	Name string `json:"name"`
}

// UpdateProfil PATCH /profil - rename only; email is owned by GoTrue.
func (h *ProfilHandler) UpdateProfil(c *gin.Context) {
	var req updateProfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.profil.UpdateName(c.Request.Context(), currentUserID(c), req.Name); err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetAvatar POST /profil/avatar - multipart upload, returns the public URL.
func (h *ProfilHandler) SetAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "A multipart 'file' field is required",
		})
		return
	}
	defer file.Close()

	url, err := h.profil.SetAvatar(c.Request.Context(), currentUserID(c), header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err, "Failed to set avatar")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// RemoveAvatar DELETE /profil/avatar
func (h *ProfilHandler) RemoveAvatar(c *gin.Context) {
	if err := h.profil.RemoveAvatar(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err, "Failed to remove avatar")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAccount DELETE /profil - removes the profile row. The GoTrue user
// itself is deleted by the hosted service-role function.
func (h *ProfilHandler) DeleteAccount(c *gin.Context) {
	if err := h.profil.DeleteAccount(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}
