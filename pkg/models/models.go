package models

import (
	"time"
)

type Admin struct {
	ID             uint   `gorm:"primary_key" json:"id"`
	Username       string `gorm:"unique" json:"username"`
	HashedPassword string `json:"-"`
}

type Video struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	YoutubeLink  string    `gorm:"not null" json:"youtube_link"`
	YoutubeID    string    `gorm:"not null" json:"youtube_id"`
	ThumbnailURL string    `gorm:"not null" json:"thumbnail_url"`
	Published    bool      `json:"published"`
	PublishedAt  time.Time `json:"published_at"`
}

type ContactMessage struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
