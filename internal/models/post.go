package models

import (
	"strings"
	"time"
)

const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"size:50;default:'General'" json:"category"`
	Tags      string    `gorm:"size:200" json:"-"` // comma separated, exposed as a list
	Status    string    `gorm:"size:20;default:'published'" json:"status"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ImageURL  string    `gorm:"size:255" json:"image_url"`
	VideoURL  string    `gorm:"size:255" json:"video_url"`
	Views     int       `gorm:"default:0" json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagList splits the stored tag string into trimmed non-empty tokens,
// in stored order. An empty string yields an empty list, not nil.
func (p *Post) TagList() []string {
	tags := []string{}
	for _, tag := range strings.Split(p.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
