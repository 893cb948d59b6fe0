package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuusmannMedia/liguster/internal/usecase"
)

// BeskederHandler exposes one-to-one conversations about posts.
type BeskederHandler struct {
	beskeder *usecase.BeskederUseCase
}

func NewBeskederHandler(beskeder *usecase.BeskederUseCase) *BeskederHandler {
	return &BeskederHandler{beskeder: beskeder}
}

// ListThreads GET /beskeder - the caller's conversations, newest first.
func (h *BeskederHandler) ListThreads(c *gin.Context) {
	threads, err := h.beskeder.Threads(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to list threads")
		return
	}
	c.JSON(http.StatusOK, gin.H{"traade": threads})
}

// ListMessages GET /beskeder/:threadId - all messages of one conversation,
// oldest first. Participants only.
func (h *BeskederHandler) ListMessages(c *gin.Context) {
	messages, err := h.beskeder.Messages(c.Request.Context(), currentUserID(c), c.Param("threadId"))
	if err != nil {
		respondError(c, err, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"beskeder": messages})
}

type sendMessageRequest struct {
	ThreadID   string `json:"thread_id"`
	ReceiverID string `json:"receiver_id"`
	PostID     string `json:"post_id"`
	Text       string `json:"text"`
}

// SendMessage POST /beskeder - append to a thread, or start one when
// thread_id is empty.
func (h *BeskederHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	threadID, err := h.beskeder.Send(c.Request.Context(), currentUserID(c), req.ReceiverID, req.ThreadID, req.PostID, req.Text)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"thread_id": threadID})
}

// DeleteThread DELETE /beskeder/:threadId - participants only.
func (h *BeskederHandler) DeleteThread(c *gin.Context) {
	if err := h.beskeder.DeleteThread(c.Request.Context(), currentUserID(c), c.Param("threadId")); err != nil {
		respondError(c, err, "Failed to delete thread")
		return
	}
	c.Status(http.StatusNoContent)
}
