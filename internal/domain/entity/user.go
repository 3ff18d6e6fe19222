package entity

import "time"

// User is an account that can own products, reviews and orders.
type User struct {
	ID         int64
	Username   string
	Email      string
	FirstName  string
	LastName   string
	Password   string
	IsStaff    bool
	DateJoined time.Time
}

// SyncUsernameWithEmail runs before every user write: a non-empty email
// becomes the username. An empty email leaves the username alone.
func (u *User) SyncUsernameWithEmail() {
	if u.Email != "" {
		u.Username = u.Email
	}
}

// DisplayName is the first name, or the email when no first name is set.
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.Email
	}
	return u.FirstName
}
