// Package web serves the localhost dashboard: a sign-in form and a
// couple of guarded views over the session controller and API client.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/btechwala999/Ignitia-client/internal/api"
	"github.com/btechwala999/Ignitia-client/internal/guard"
	"github.com/btechwala999/Ignitia-client/internal/session"
)

type Server struct {
	httpServer *http.Server
}

func New(addr string, ctrl *session.Controller, client *api.Client) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: NewRouter(ctrl, client),
		},
	}
}

// NewRouter builds the dashboard routes; split out so tests can drive
// the handler directly.
func NewRouter(ctrl *session.Controller, client *api.Client) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(templates)

	h := &handlers{ctrl: ctrl, client: client}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})
	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)

	authed := router.Group("/")
	authed.Use(guard.GinRequire(ctrl))
	authed.GET("/dashboard", h.dashboard)

	// Paper management mirrors the SPA: creation tooling is for staff.
	staff := router.Group("/papers")
	staff.Use(guard.GinRequire(ctrl, api.RoleTeacher, api.RoleAdmin))
	staff.GET("", h.papers)

	return router
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
