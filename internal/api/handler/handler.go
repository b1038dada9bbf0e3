package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/jon4hz/feedback/internal/auth"
	"github.com/jon4hz/feedback/internal/config"
	"github.com/jon4hz/feedback/internal/database"
)

// Handler serves all routes of the feedback app.
type Handler struct {
	db          database.DB
	auth        *auth.Service
	gravatarCfg *config.GravatarConfig
}

// New creates a new Handler.
func New(db database.DB, authService *auth.Service, gravatarCfg *config.GravatarConfig) *Handler {
	return &Handler{
		db:          db,
		auth:        authService,
		gravatarCfg: gravatarCfg,
	}
}

// Home redirects to the profile of the logged-in user, or to registration.
func (h *Handler) Home(c *gin.Context) {
	if username := auth.SessionUsername(c); username != "" {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}
	c.Redirect(http.StatusFound, "/register")
}

// NotFound renders the custom 404 page.
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", gin.H{})
}

// render wraps c.HTML, attaching pending flash messages and the session user.
func (h *Handler) render(c *gin.Context, status int, page string, data gin.H) {
	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		data["Flashes"] = flashes
		if err := session.Save(); err != nil {
			log.Error("failed to save session", "error", err)
		}
	}
	data["SessionUser"] = auth.SessionUsername(c)
	c.HTML(status, page, data)
}

// flash stores a one-shot notice for the next rendered page.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
	}
}
