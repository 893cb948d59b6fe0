package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     repository.AuthProvider
	Posts    *PostsHandler
	Beskeder *BeskederHandler
	Forening *ForeningHandler
	Profil   *ProfilHandler
}

// NewRouter builds the full API surface. Reads are open to anonymous
// callers; everything that writes or exposes personal data sits behind
// RequireAuth.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(AuthMiddleware(h.Auth))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "liguster"})
	})

	r.GET("/opslag", h.Posts.ListPosts)
	r.GET("/opslag/:id", h.Posts.GetPost)

	authed := r.Group("/", RequireAuth())
	{
		authed.POST("/opslag", h.Posts.CreatePost)
		authed.PATCH("/opslag/:id", h.Posts.UpdatePost)
		authed.DELETE("/opslag/:id", h.Posts.DeletePost)
		authed.POST("/opslag/billeder", h.Posts.UploadImage)
		authed.GET("/mine/opslag", h.Posts.ListMine)

		authed.GET("/beskeder", h.Beskeder.ListThreads)
		authed.POST("/beskeder", h.Beskeder.SendMessage)
		authed.GET("/beskeder/:threadId", h.Beskeder.ListMessages)
		authed.DELETE("/beskeder/:threadId", h.Beskeder.DeleteThread)

		authed.GET("/profil", h.Profil.GetProfil)
		authed.PATCH("/profil", h.Profil.UpdateProfil)
		authed.POST("/profil/avatar", h.Profil.SetAvatar)
		authed.DELETE("/profil/avatar", h.Profil.RemoveAvatar)
		authed.DELETE("/profil", h.Profil.DeleteAccount)
	}

	r.GET("/foreninger", h.Forening.ListForeninger)
	r.GET("/foreninger/:id", h.Forening.GetForening)
	foreninger := r.Group("/foreninger", RequireAuth())
	{
		foreninger.POST("", h.Forening.CreateForening)
		foreninger.POST("/:id/ansoegninger", h.Forening.Apply)
		foreninger.POST("/:id/ansoegninger/:userId/godkend", h.Forening.Approve)
		foreninger.DELETE("/:id/ansoegninger/:userId", h.Forening.Reject)
		foreninger.GET("/:id/medlemmer", h.Forening.ListMembers)
	}

	return r
}
