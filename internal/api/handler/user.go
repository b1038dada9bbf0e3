package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jon4hz/feedback/internal/api/models"
	"github.com/jon4hz/feedback/internal/auth"
)

// UserProfile shows a user's profile and owned feedback.
func (h *Handler) UserProfile(c *gin.Context) {
	username := c.Param("username")

	user, err := h.db.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.NotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	feedbacks, err := h.db.ListFeedbackByUsername(c.Request.Context(), username)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	sessionUser := c.MustGet(auth.ContextKeyUsername).(string)
	h.render(c, http.StatusOK, "profile.html", gin.H{
		"User":      models.UserFromDB(user, h.gravatarCfg),
		"Feedbacks": models.FeedbackListFromDB(feedbacks),
		"IsOwner":   sessionUser == user.Username,
	})
}

// DeleteUserConfirm renders the account deletion confirmation page.
func (h *Handler) DeleteUserConfirm(c *gin.Context) {
	username := c.Param("username")
	sessionUser := c.MustGet(auth.ContextKeyUsername).(string)

	if username != sessionUser {
		flash(c, "You can only delete your own account.")
		c.Redirect(http.StatusFound, "/users/"+sessionUser)
		return
	}

	h.render(c, http.StatusOK, "user_delete.html", gin.H{
		"Username": username,
	})
}

// DeleteUser removes the account and all feedback it owns, then clears the session.
func (h *Handler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	sessionUser := c.MustGet(auth.ContextKeyUsername).(string)

	if username != sessionUser {
		flash(c, "You can only delete your own account.")
		c.Redirect(http.StatusFound, "/users/"+sessionUser)
		return
	}

	if err := h.db.DeleteUser(c.Request.Context(), username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.NotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := auth.SignOut(c); err != nil {
		log.Error("failed to save session", "error", err)
	}
	flash(c, "Your account has been deleted.")
	c.Redirect(http.StatusFound, "/")
}
