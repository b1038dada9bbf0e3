package models

// User is the view model for a rendered account.
type User struct {
	Username  string
	Email     string
	FullName  string
	AvatarURL string
}

// Feedback is the view model for a rendered feedback item.
type Feedback struct {
	ID       uint
	Title    string
	Content  string
	Username string
	// Posted is a relative timestamp like "3 days ago".
	Posted string
}
