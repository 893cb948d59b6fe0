package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuusmannMedia/liguster/internal/usecase"
)

// ForeningHandler exposes associations and their membership flows.
type ForeningHandler struct {
	foreninger *usecase.ForeningUseCase
}

func NewForeningHandler(foreninger *usecase.ForeningUseCase) *ForeningHandler {
	return &ForeningHandler{foreninger: foreninger}
}

// ListForeninger GET /foreninger - all associations, optionally narrowed
// by ?search= over navn and sted.
func (h *ForeningHandler) ListForeninger(c *gin.Context) {
	foreninger, err := h.foreninger.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err, "Failed to list foreninger")
		return
	}
	c.JSON(http.StatusOK, gin.H{"foreninger": foreninger})
}

// GetForening GET /foreninger/:id
func (h *ForeningHandler) GetForening(c *gin.Context) {
	forening, err := h.foreninger.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get forening")
		return
	}
	c.JSON(http.StatusOK, forening)
}

type createForeningRequest struct {
	Navn        string `json:"navn"`
	Sted        string `json:"sted"`
	Beskrivelse string `json:"beskrivelse"`
}

// CreateForening POST /foreninger - the creator becomes an approved admin.
func (h *ForeningHandler) CreateForening(c *gin.Context) {
	var req createForeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	id, err := h.foreninger.Create(c.Request.Context(), currentUserID(c), req.Navn, req.Sted, req.Beskrivelse)
	if err != nil {
		respondError(c, err, "Failed to create forening")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Apply POST /foreninger/:id/ansoegninger - file a pending application.
func (h *ForeningHandler) Apply(c *gin.Context) {
	if err := h.foreninger.Apply(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to apply")
		return
	}
	c.Status(http.StatusCreated)
}

// Approve POST /foreninger/:id/ansoegninger/:userId/godkend - admin only.
func (h *ForeningHandler) Approve(c *gin.Context) {
	if err := h.foreninger.Approve(c.Request.Context(), currentUserID(c), c.Param("id"), c.Param("userId")); err != nil {
		respondError(c, err, "Failed to approve application")
		return
	}
	c.Status(http.StatusNoContent)
}

// Reject DELETE /foreninger/:id/ansoegninger/:userId - admin only.
func (h *ForeningHandler) Reject(c *gin.Context) {
	if err := h.foreninger.Reject(c.Request.Context(), currentUserID(c), c.Param("id"), c.Param("userId")); err != nil {
		respondError(c, err, "Failed to reject application")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMembers GET /foreninger/:id/medlemmer
func (h *ForeningHandler) ListMembers(c *gin.Context) {
	members, err := h.foreninger.Members(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"medlemmer": members})
}
