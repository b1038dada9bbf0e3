package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Feedback represents a single feedback item owned by a user.
type Feedback struct {
	ID        uint   `gorm:"primarykey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	Username  string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Client) CreateFeedback(ctx context.Context, feedback *Feedback) error {
	if err := c.db.WithContext(ctx).Create(feedback).Error; err != nil {
		log.Error("failed to create feedback", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetFeedbackByID(ctx context.Context, id uint) (*Feedback, error) {
	var feedback Feedback
	if err := c.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get feedback by id", "id", id, "error", err)
		}
		return nil, err
	}
	return &feedback, nil
}

func (c *Client) ListFeedbackByUsername(ctx context.Context, username string) ([]Feedback, error) {
	var feedbacks []Feedback
	if err := c.db.WithContext(ctx).Where("username = ?", username).Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		log.Error("failed to list feedback", "username", username, "error", err)
		return nil, err
	}
	return feedbacks, nil
}

// UpdateFeedback changes title and content of an existing feedback item.
// The id and owner never change.
func (c *Client) UpdateFeedback(ctx context.Context, id uint, title, content string) error {
	result := c.db.WithContext(ctx).Model(&Feedback{}).Where("id = ?", id).Updates(map[string]any{
		"title":   title,
		"content": content,
	})
	if result.Error != nil {
		log.Error("failed to update feedback", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (c *Client) DeleteFeedback(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(&Feedback{}, id)
	if result.Error != nil {
		log.Error("failed to delete feedback", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
