package models

import "time"

// Session is a server-side session row. The token is the JWT handed to the
// client in the session_token cookie; deleting the row revokes it before its
// natural expiry.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
