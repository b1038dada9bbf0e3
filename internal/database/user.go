package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// User represents a registered account.
// PasswordHash holds the bcrypt digest of the password, never the plaintext.
// Deleting a user removes all feedback owned by it.
type User struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Feedbacks []Feedback `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

// FullName returns the user's first and last name joined by a space.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func (c *Client) CreateUser(ctx context.Context, user *User) error {
	if err := c.db.WithContext(ctx).Create(user).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Error("failed to create user", "error", err)
		}
		return err
	}
	return nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by username", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user and all feedback it owns in a single transaction.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			return err
		}
		if err := tx.Where("username = ?", username).Delete(&Feedback{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to delete user", "username", username, "error", err)
		}
		return err
	}
	return nil
}
