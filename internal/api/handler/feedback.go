package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jon4hz/feedback/internal/api/models"
	"github.com/jon4hz/feedback/internal/auth"
	"github.com/jon4hz/feedback/internal/database"
)

// AddFeedbackForm renders the form for creating a feedback item.
func (h *Handler) AddFeedbackForm(c *gin.Context) {
	username := c.Param("username")
	sessionUser := c.MustGet(auth.ContextKeyUsername).(string)

	if username != sessionUser {
		flash(c, "You can only add feedback to your own profile.")
		c.Redirect(http.StatusFound, "/users/"+sessionUser)
		return
	}

	h.render(c, http.StatusOK, "feedback_add.html", gin.H{
		"Form":     FeedbackForm{},
		"Username": username,
	})
}

// AddFeedback creates a feedback item owned by the session user.
func (h *Handler) AddFeedback(c *gin.Context) {
	username := c.Param("username")
	sessionUser := c.MustGet(auth.ContextKeyUsername).(string)

	if username != sessionUser {
		flash(c, "You can only add feedback to your own profile.")
		c.Redirect(http.StatusFound, "/users/"+sessionUser)
		return
	}

	var form FeedbackForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "feedback_add.html", gin.H{
			"Errors":   formErrors(err),
			"Form":     form,
			"Username": username,
		})
		return
	}

	feedback := &database.Feedback{
		Title:    form.Title,
		Content:  form.Content,
		Username: sessionUser,
	}
	if err := h.db.CreateFeedback(c.Request.Context(), feedback); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash(c, "Feedback added.")
	c.Redirect(http.StatusFound, "/users/"+sessionUser)
}

// EditFeedbackForm renders the form for editing a feedback item.
func (h *Handler) EditFeedbackForm(c *gin.Context) {
	feedback, ok := h.ownedFeedback(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, "feedback_edit.html", gin.H{
		"Feedback": models.FeedbackFromDB(*feedback),
		"Form": FeedbackForm{
			Title:   feedback.Title,
			Content: feedback.Content,
		},
	})
}

// EditFeedback updates title and content of a feedback item.
func (h *Handler) EditFeedback(c *gin.Context) {
	feedback, ok := h.ownedFeedback(c)
	if !ok {
		return
	}

	var form FeedbackForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "feedback_edit.html", gin.H{
			"Errors":   formErrors(err),
			"Form":     form,
			"Feedback": models.FeedbackFromDB(*feedback),
		})
		return
	}

	if err := h.db.UpdateFeedback(c.Request.Context(), feedback.ID, form.Title, form.Content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.NotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash(c, "Feedback updated.")
	c.Redirect(http.StatusFound, "/users/"+feedback.Username)
}

// DeleteFeedbackConfirm renders the feedback deletion confirmation page.
func (h *Handler) DeleteFeedbackConfirm(c *gin.Context) {
	feedback, ok := h.ownedFeedback(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, "feedback_delete.html", gin.H{
		"Feedback": models.FeedbackFromDB(*feedback),
	})
}

// DeleteFeedback removes a feedback item owned by the session user.
func (h *Handler) DeleteFeedback(c *gin.Context) {
	feedback, ok := h.ownedFeedback(c)
	if !ok {
		return
	}

	if err := h.db.DeleteFeedback(c.Request.Context(), feedback.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.NotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	flash(c, "Feedback deleted.")
	c.Redirect(http.StatusFound, "/users/"+feedback.Username)
}

// ownedFeedback loads the feedback item from the :id param and enforces that
// the session user owns it. Unknown ids and foreign items both render the 404
// page so item existence is not leaked.
func (h *Handler) ownedFeedback(c *gin.Context) (*database.Feedback, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.NotFound(c)
		return nil, false
	}

	feedback, err := h.db.GetFeedbackByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.NotFound(c)
			return nil, false
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}

	sessionUser := c.MustGet(auth.ContextKeyUsername).(string)
	if feedback.Username != sessionUser {
		h.NotFound(c)
		return nil, false
	}

	return feedback, true
}
