package models

import "time"

// WebsiteEntry is a remembered website credential. Password carries the
// plaintext only in transit; at rest it lives in password_cipher/password_nonce
// columns encrypted with AES-GCM.
type WebsiteEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Purpose   string    `json:"purpose"`
	LoginID   string    `json:"login_id,omitempty"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// At-rest representation of Password. Never serialized.
	PasswordCipher []byte `json:"-"`
	PasswordNonce  []byte `json:"-"`
}

// AppEntry is a remembered application credential.
type AppEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AppName   string    `json:"app_name"`
	Purpose   string    `json:"purpose"`
	Username  string    `json:"username,omitempty"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// At-rest representation of Password. Never serialized.
	PasswordCipher []byte `json:"-"`
	PasswordNonce  []byte `json:"-"`
}

// Note is a free-form note.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Attachment is a file attached to a note. The payload itself lives in the
// S3-compatible store under StorageKey; the server only hands out presigned
// URLs.
type Attachment struct {
	ID         string    `json:"id"`
	NoteID     string    `json:"note_id"`
	UserID     string    `json:"user_id"`
	StorageKey string    `json:"storage_key"`
	Filename   string    `json:"filename"`
	CreatedAt  time.Time `json:"created_at"`
}
