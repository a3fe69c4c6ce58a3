package models

import "time"

// User is an account created from the identity broker's profile data on first
// sign-in. AppLockHash holds the bcrypt hash of the optional passcode; an
// empty value means no app lock is configured.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Picture     string    `json:"picture"`
	AppLockHash string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasAppLock reports whether the user configured a passcode.
func (u *User) HasAppLock() bool {
	return u.AppLockHash != ""
}
