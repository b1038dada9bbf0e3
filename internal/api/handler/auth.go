package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/jon4hz/feedback/internal/auth"
)

// RegisterForm renders the registration form.
func (h *Handler) RegisterForm(c *gin.Context) {
	if auth.SessionUsername(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "register.html", gin.H{"Form": RegisterForm{}})
}

// Register creates a new account and logs it in.
func (h *Handler) Register(c *gin.Context) {
	if auth.SessionUsername(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "register.html", gin.H{
			"Errors": formErrors(err),
			"Form":   form,
		})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), form.Username, form.Password, form.Email, form.FirstName, form.LastName)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUser) {
			h.render(c, http.StatusOK, "register.html", gin.H{
				"Errors": []string{"Username or Email is already taken. Please pick another."},
				"Form":   form,
			})
			return
		}
		log.Error("failed to register user", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := auth.SignIn(c, user.Username); err != nil {
		log.Error("failed to save session", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	flash(c, "Welcome! Your account has been created.")
	c.Redirect(http.StatusFound, "/users/"+user.Username)
}

// LoginForm renders the login form.
func (h *Handler) LoginForm(c *gin.Context) {
	if auth.SessionUsername(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", gin.H{"Form": LoginForm{}})
}

// Login authenticates a user and starts a session.
func (h *Handler) Login(c *gin.Context) {
	if auth.SessionUsername(c) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "login.html", gin.H{
			"Errors": formErrors(err),
			"Form":   form,
		})
		return
	}

	user, ok := h.auth.Authenticate(c.Request.Context(), form.Username, form.Password)
	if !ok {
		// Deliberately the same message for unknown user and wrong password.
		h.render(c, http.StatusOK, "login.html", gin.H{
			"Errors": []string{"Invalid username/password."},
			"Form":   form,
		})
		return
	}

	if err := auth.SignIn(c, user.Username); err != nil {
		log.Error("failed to save session", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/users/"+user.Username)
}

// Logout clears the session.
func (h *Handler) Logout(c *gin.Context) {
	if err := auth.SignOut(c); err != nil {
		log.Error("failed to save session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}
