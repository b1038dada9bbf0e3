package database

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var _ DB = (*Client)(nil) // Ensure Client implements DB

// DB defines the interface for database operations.
type DB interface {
	// User management
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	DeleteUser(ctx context.Context, username string) error

	// Feedback management
	CreateFeedback(ctx context.Context, feedback *Feedback) error
	GetFeedbackByID(ctx context.Context, id uint) (*Feedback, error)
	ListFeedbackByUsername(ctx context.Context, username string) ([]Feedback, error)
	UpdateFeedback(ctx context.Context, id uint, title, content string) error
	DeleteFeedback(ctx context.Context, id uint) error

	// Utility
	Close() error
}

// Client wraps the gorm.DB instance.
type Client struct {
	db *gorm.DB
}

// New creates a new database connection and performs migrations.
func New(dbpath string) (*Client, error) {
	db, err := gorm.Open(sqlite.Open(dbpath), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&User{},
		&Feedback{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Client{db: db}, nil
}

// Reset drops both tables and recreates the schema.
func (c *Client) Reset() error {
	if err := c.db.Migrator().DropTable(&Feedback{}, &User{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := c.db.AutoMigrate(&User{}, &Feedback{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
