package auth

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// SessionKeyUsername is the session key holding the logged-in username.
	SessionKeyUsername = "username"
	// ContextKeyUsername is the gin context key holding the logged-in username.
	ContextKeyUsername = "username"
)

// RequireAuth redirects anonymous requests to the login page with a flash
// notice. For authenticated requests the username is stored on the gin context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username, ok := session.Get(SessionKeyUsername).(string)
		if !ok || username == "" {
			session.AddFlash("Please login first!")
			if err := session.Save(); err != nil {
				log.Error("failed to save session", "error", err)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextKeyUsername, username)
	}
}

// SignIn associates the session with the given username.
func SignIn(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(SessionKeyUsername, username)
	return session.Save()
}

// SignOut clears the session.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// SessionUsername returns the logged-in username for the current session,
// or an empty string for anonymous requests.
func SessionUsername(c *gin.Context) string {
	session := sessions.Default(c)
	username, _ := session.Get(SessionKeyUsername).(string)
	return username
}
