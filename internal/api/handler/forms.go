package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// RegisterForm is the form for creating a new account.
type RegisterForm struct {
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
}

// LoginForm is the form for logging in.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// FeedbackForm is the form for adding or editing a feedback item.
type FeedbackForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

// fieldMessages maps struct field names to their user-facing required-input messages.
var fieldMessages = map[string]string{
	"Username":  "Please enter your Username",
	"Password":  "Please enter your Password",
	"Email":     "Please enter your Email",
	"FirstName": "Please enter your First Name",
	"LastName":  "Please enter your Last Name",
	"Title":     "Please enter a Title",
	"Content":   "Please enter your Feedback",
}

// formErrors turns a gin binding error into field-level messages.
func formErrors(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return lo.Map(verrs, func(fe validator.FieldError, _ int) string {
			if fe.Tag() == "email" {
				return "Please enter a valid Email address"
			}
			if msg, ok := fieldMessages[fe.Field()]; ok {
				return msg
			}
			return "Please fill in all required fields"
		})
	}
	return []string{"Please fill in all required fields"}
}
