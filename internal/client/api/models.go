package api

import "time"

// UserProfile is the signed-in user as reported by the server.
type UserProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Identity pairs the user with the server-side app-lock flag. NeedsAppLock
// says a passcode exists, not whether this client has verified it.
type Identity struct {
	User         *UserProfile `json:"user"`
	NeedsAppLock bool         `json:"needs_app_lock"`
}

type Website struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Purpose   string    `json:"purpose"`
	LoginID   string    `json:"login_id"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

type App struct {
	ID        string    `json:"id"`
	AppName   string    `json:"app_name"`
	Purpose   string    `json:"purpose"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Attachment struct {
	ID         string    `json:"id"`
	NoteID     string    `json:"note_id"`
	StorageKey string    `json:"storage_key"`
	Filename   string    `json:"filename"`
	CreatedAt  time.Time `json:"created_at"`
}
