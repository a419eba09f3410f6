// Package router wires every feature's handlers into the Gin engine
// and applies the auth middleware per route group.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "manassa_backend/internal/feature/auth/transport/handler"
	chathandler "manassa_backend/internal/feature/chat/transport/handler"
	contenthandler "manassa_backend/internal/feature/content/transport/handler"
	jwtmw "manassa_backend/internal/platform/jwt"
	platformhandler "manassa_backend/internal/platform/http/handler"
)

// NewRouter assembles the route table. jwtSecret signs and verifies
// the bearer tokens guarding the authenticated groups.
func NewRouter(jwtSecret string, auth *authhandler.AuthHandler, chat *chathandler.ChatHandler,
	content *contenthandler.ContentHandler) *gin.Engine {
	r := gin.Default()
	// Gin binds middleware per route at registration time, so CORS has
	// to be installed before any route below.
	r.Use(cors.Default())

	// Public surface: no credentials required.
	r.GET("/healthz", platformhandler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/admin/login", auth.AdminLogin)

	r.GET("/articles", content.ListArticles)
	r.GET("/articles/:slug", content.GetArticle)
	r.GET("/projects", content.ListProjects)
	r.GET("/projects/:slug", content.GetProject)

	r.GET("/chat/status", chat.Status)
	r.GET("/chat/messages", chat.Messages)
	r.GET("/chat/stream/messages", chat.StreamMessages)
	r.GET("/chat/stream/status", chat.StreamStatus)

	// Logged-in users.
	user := r.Group("/")
	user.Use(jwtmw.AuthRequired(jwtSecret))
	{
		user.POST("/chat/messages", chat.SendMessage)
		user.POST("/logout", auth.Logout)
	}

	// Admin-only surface.
	admin := r.Group("/admin")
	admin.Use(jwtmw.AdminRequired(jwtSecret))
	{
		admin.POST("/logout", auth.AdminLogout)

		admin.POST("/chat/open", chat.OpenChat)
		admin.POST("/chat/close", chat.CloseChat)
		admin.DELETE("/chat/messages/:id", chat.DeleteMessage)
		admin.DELETE("/chat/messages", chat.ClearMessages)
		admin.POST("/chat/bans", chat.BanUser)
		admin.DELETE("/chat/bans", chat.UnbanUser)
		admin.GET("/chat/bans", chat.BannedUsers)

		admin.GET("/articles", content.ListAllArticles)
		admin.POST("/articles", content.CreateArticle)
		admin.PUT("/articles/:slug", content.UpdateArticle)
		admin.DELETE("/articles/:slug", content.DeleteArticle)
		admin.POST("/articles/:slug/preview", content.PreviewLink)

		admin.GET("/projects", content.ListAllProjects)
		admin.POST("/projects", content.CreateProject)
		admin.PUT("/projects/:slug", content.UpdateProject)
		admin.DELETE("/projects/:slug", content.DeleteProject)
	}

	return r
}
