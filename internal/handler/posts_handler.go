package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/service"
	"github.com/MuusmannMedia/liguster/internal/usecase"
)

// PostsHandler exposes the opslag feed and its owner operations.
type PostsHandler struct {
	posts *usecase.PostsUseCase
}

func NewPostsHandler(posts *usecase.PostsUseCase) *PostsHandler {
	return &PostsHandler{posts: posts}
}

// ListPosts GET /opslag - the filtered neighborhood feed.
//
// Query parameters: q (free text), kategori, radius (km), lat, lng. The
// radius only applies when both lat and lng are given; posts without
// coordinates are always included.
func (h *PostsHandler) ListPosts(c *gin.Context) {
	criteria := service.FilterCriteria{
		Query:    c.Query("q"),
		Kategori: c.DefaultQuery("kategori", model.AlleKategorier),
		RadiusKm: model.DefaultRadiusKm,
	}

	if raw := c.Query("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "radius must be a positive number of kilometres",
			})
			return
		}
		criteria.RadiusKm = radius
	}

	loc, ok := locationFromQuery(c)
	if !ok {
		return
	}

	posts, err := h.posts.List(c.Request.Context(), criteria, loc)
	if err != nil {
		respondError(c, err, "Failed to list posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"opslag": posts})
}

// GetPost GET /opslag/:id
func (h *PostsHandler) GetPost(c *gin.Context) {
	post, err := h.posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListMine GET /mine/opslag - the caller's own posts, newest first.
func (h *PostsHandler) ListMine(c *gin.Context) {
	posts, err := h.posts.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to list posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"opslag": posts})
}

// CreatePost POST /opslag
func (h *PostsHandler) CreatePost(c *gin.Context) {
	var draft model.PostDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.posts.Create(c.Request.Context(), currentUserID(c), &draft); err != nil {
		respondError(c, err, "Failed to create post")
		return
	}
	c.Status(http.StatusCreated)
}

// UpdatePost PATCH /opslag/:id - owner only.
func (h *PostsHandler) UpdatePost(c *gin.Context) {
	var draft model.PostDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.posts.Update(c.Request.Context(), currentUserID(c), c.Param("id"), &draft); err != nil {
		respondError(c, err, "Failed to update post")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePost DELETE /opslag/:id - owner only.
func (h *PostsHandler) DeletePost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete post")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage POST /opslag/billeder - multipart upload, returns the public URL.
func (h *PostsHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "A multipart 'file' field is required",
		})
		return
	}
	defer file.Close()

	url, err := h.posts.UploadImage(c.Request.Context(), currentUserID(c), header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err, "Failed to upload image")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// locationFromQuery reads the optional lat/lng pair. Supplying only one of
// the two is a client error.
func locationFromQuery(c *gin.Context) (*model.UserLocation, bool) {
	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw == "" && lngRaw == "" {
		return nil, true
	}
	if latRaw == "" || lngRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat and lng must be given together",
		})
		return nil, false
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid lat value",
		})
		return nil, false
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid lng value",
		})
		return nil, false
	}

	loc := &model.UserLocation{Latitude: lat, Longitude: lng}
	if !loc.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat/lng outside valid WGS84 range",
		})
		return nil, false
	}
	return loc, true
}
