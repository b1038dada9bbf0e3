package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/jon4hz/feedback/internal/api/handler"
	"github.com/jon4hz/feedback/internal/auth"
	"github.com/jon4hz/feedback/internal/config"
	"github.com/jon4hz/feedback/internal/database"
	"github.com/jon4hz/feedback/web"
)

// Server serves the feedback web application.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        database.DB
}

// New creates the server and wires up sessions, templates and routes.
func New(cfg *config.Config, db database.DB, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		db:        db,
	}
	s.setupSession()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("feedback_session", store))
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	s.ginEngine.SetHTMLTemplate(web.Templates())
	s.ginEngine.StaticFS("/static", http.FS(web.Static()))

	h := handler.New(s.db, auth.New(s.db), s.cfg.Gravatar)

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/register", h.RegisterForm)
	s.ginEngine.POST("/register", h.Register)
	s.ginEngine.GET("/login", h.LoginForm)
	s.ginEngine.POST("/login", h.Login)
	s.ginEngine.NoRoute(h.NotFound)

	protected := s.ginEngine.Group("/")
	protected.Use(auth.RequireAuth())

	protected.GET("/logout", h.Logout)

	protected.GET("/users/:username", h.UserProfile)
	protected.GET("/users/:username/delete", h.DeleteUserConfirm)
	protected.POST("/users/:username/delete", h.DeleteUser)
	protected.GET("/users/:username/feedback/add", h.AddFeedbackForm)
	protected.POST("/users/:username/feedback/add", h.AddFeedback)

	protected.GET("/feedback/:id/update", h.EditFeedbackForm)
	protected.POST("/feedback/:id/update", h.EditFeedback)
	protected.GET("/feedback/:id/delete", h.DeleteFeedbackConfirm)
	protected.POST("/feedback/:id/delete", h.DeleteFeedback)
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.ginEngine
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}
