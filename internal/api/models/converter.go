package models

import (
	"github.com/mergestat/timediff"
	"github.com/samber/lo"

	"github.com/jon4hz/feedback/gravatar"
	"github.com/jon4hz/feedback/internal/config"
	"github.com/jon4hz/feedback/internal/database"
)

// UserFromDB converts a database user into its view model.
func UserFromDB(user *database.User, gravatarCfg *config.GravatarConfig) User {
	return User{
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName(),
		AvatarURL: gravatar.GenerateURL(user.Email, gravatarCfg),
	}
}

// FeedbackFromDB converts a database feedback item into its view model.
func FeedbackFromDB(feedback database.Feedback) Feedback {
	return Feedback{
		ID:       feedback.ID,
		Title:    feedback.Title,
		Content:  feedback.Content,
		Username: feedback.Username,
		Posted:   timediff.TimeDiff(feedback.CreatedAt),
	}
}

// FeedbackListFromDB converts a list of database feedback items into view models.
func FeedbackListFromDB(feedbacks []database.Feedback) []Feedback {
	return lo.Map(feedbacks, func(f database.Feedback, _ int) Feedback {
		return FeedbackFromDB(f)
	})
}
