package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID        string       `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID  string       `gorm:"type:uuid;not null;index" json:"author_id"`
	Title     string       `gorm:"type:varchar(100);not null" json:"title"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	Tags      string       `gorm:"type:varchar(100)" json:"tags"`
	Likes     int          `gorm:"default:0" json:"likes"`
	Views     int          `gorm:"default:0" json:"views"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Media     []MediaModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"media,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type MediaModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	FileName  string    `gorm:"type:varchar(100);not null" json:"file_name"`
	Kind      string    `gorm:"type:varchar(10);not null" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

func (MediaModel) TableName() string {
	return "media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
