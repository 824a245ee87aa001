package entity

import "time"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags"`
	Likes     int       `json:"likes"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Media     []Media   `json:"media,omitempty"`
}

// Media belongs to exactly one post for its whole life. Rows are created only
// alongside post creation and removed only by the owning post's delete.
type Media struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	FileName  string    `json:"file_name"`
	Kind      MediaKind `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
