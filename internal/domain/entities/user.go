package entities

import "time"

// User is a visitor that owns a set of preferences.
type User struct {
	ID         int64 // Telegram user ID
	ChatID     int64
	Username   string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

func NewUser(id, chatID int64, username string) *User {
	return &User{
		ID:       id,
		ChatID:   chatID,
		Username: username,
	}
}
