package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ClientTestSuite struct {
	suite.Suite
	client *Client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	client, err := New(":memory:")
	require.NoError(s.T(), err)
	s.client = client
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
}

func (s *ClientTestSuite) newUser(username string) *User {
	return &User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$fakefakefakefakefakefuzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
		FirstName:    "first",
		LastName:     "last",
	}
}

func (s *ClientTestSuite) TestCreateUser_DuplicateUsername() {
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("alice")))

	dup := s.newUser("alice")
	dup.Email = "other@example.com"
	err := s.client.CreateUser(s.ctx, dup)
	s.Require().ErrorIs(err, gorm.ErrDuplicatedKey)

	// still exactly one row for alice
	user, err := s.client.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice@example.com", user.Email)
}

func (s *ClientTestSuite) TestCreateUser_DuplicateEmail() {
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("alice")))

	dup := s.newUser("bob")
	dup.Email = "alice@example.com"
	err := s.client.CreateUser(s.ctx, dup)
	s.Require().ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *ClientTestSuite) TestGetUserByUsername_NotFound() {
	_, err := s.client.GetUserByUsername(s.ctx, "nobody")
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ClientTestSuite) TestDeleteUser_CascadesFeedback() {
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("alice")))
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("bob")))

	for range 3 {
		s.Require().NoError(s.client.CreateFeedback(s.ctx, &Feedback{Title: "t", Content: "c", Username: "alice"}))
	}
	s.Require().NoError(s.client.CreateFeedback(s.ctx, &Feedback{Title: "t", Content: "c", Username: "bob"}))

	s.Require().NoError(s.client.DeleteUser(s.ctx, "alice"))

	_, err := s.client.GetUserByUsername(s.ctx, "alice")
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	feedbacks, err := s.client.ListFeedbackByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Empty(feedbacks)

	// bob's feedback is untouched
	feedbacks, err = s.client.ListFeedbackByUsername(s.ctx, "bob")
	s.Require().NoError(err)
	s.Len(feedbacks, 1)
}

func (s *ClientTestSuite) TestDeleteUser_NotFound() {
	err := s.client.DeleteUser(s.ctx, "nobody")
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ClientTestSuite) TestCreateFeedback() {
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("alice")))

	feedback := &Feedback{Title: "Great", Content: "Loved it", Username: "alice"}
	s.Require().NoError(s.client.CreateFeedback(s.ctx, feedback))
	s.NotZero(feedback.ID)

	feedbacks, err := s.client.ListFeedbackByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(feedbacks, 1)
	s.Equal("Great", feedbacks[0].Title)
	s.Equal("Loved it", feedbacks[0].Content)
	s.Equal("alice", feedbacks[0].Username)
}

func (s *ClientTestSuite) TestUpdateFeedback_KeepsIDAndOwner() {
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("alice")))
	feedback := &Feedback{Title: "old", Content: "old content", Username: "alice"}
	s.Require().NoError(s.client.CreateFeedback(s.ctx, feedback))

	s.Require().NoError(s.client.UpdateFeedback(s.ctx, feedback.ID, "new", "new content"))

	got, err := s.client.GetFeedbackByID(s.ctx, feedback.ID)
	s.Require().NoError(err)
	s.Equal(feedback.ID, got.ID)
	s.Equal("alice", got.Username)
	s.Equal("new", got.Title)
	s.Equal("new content", got.Content)
}

func (s *ClientTestSuite) TestUpdateFeedback_NotFound() {
	err := s.client.UpdateFeedback(s.ctx, 42, "t", "c")
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ClientTestSuite) TestDeleteFeedback() {
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("alice")))
	feedback := &Feedback{Title: "t", Content: "c", Username: "alice"}
	s.Require().NoError(s.client.CreateFeedback(s.ctx, feedback))

	s.Require().NoError(s.client.DeleteFeedback(s.ctx, feedback.ID))

	_, err := s.client.GetFeedbackByID(s.ctx, feedback.ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	s.Require().ErrorIs(s.client.DeleteFeedback(s.ctx, feedback.ID), gorm.ErrRecordNotFound)
}

func (s *ClientTestSuite) TestReset() {
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("alice")))
	s.Require().NoError(s.client.Reset())

	_, err := s.client.GetUserByUsername(s.ctx, "alice")
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	// schema is usable again after the reset
	s.Require().NoError(s.client.CreateUser(s.ctx, s.newUser("alice")))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
