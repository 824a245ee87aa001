package entity

import "time"

// DefaultAvatar is the sentinel assigned to users who never uploaded one.
const DefaultAvatar = "default.jpg"

type User struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
