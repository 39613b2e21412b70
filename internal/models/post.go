package models

import (
	"time"
)

// Post represents a forum post. CommentsCount is denormalized and maintained
// incrementally by the comment repository; Views is bumped atomically on
// post detail reads, never by the feed.
type Post struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Title         string       `gorm:"not null" json:"title"`
	Content       string       `gorm:"type:text;not null" json:"content"`
	Cycle         int          `json:"cycle"`
	UserID        uint         `gorm:"not null;index" json:"user_id"`
	User          User         `gorm:"foreignKey:UserID" json:"user"`
	CourseID      string       `gorm:"size:16;index" json:"course_id"`
	Course        *Course      `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Attachments   []Attachment `gorm:"foreignKey:PostID" json:"attachments"`
	Views         int          `gorm:"not null;default:0" json:"views"`
	CommentsCount int          `gorm:"not null;default:0" json:"comments_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Attachment is an uploaded file belonging to a post. Attachments are
// append-only: edits may add rows but existing rows are never changed.
type Attachment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PostID       uint      `gorm:"not null;index" json:"post_id"`
	OriginalName string    `gorm:"not null" json:"original_name"`
	FileName     string    `gorm:"not null" json:"file_name"`
	Path         string    `gorm:"not null" json:"path"`
	MimeType     string    `json:"mime_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// FeedSort is the closed enumeration of feed orderings. Raw request values
// are mapped through ParseFeedSort; unknown values fall back to newest.
type FeedSort string

const (
	FeedSortNewest    FeedSort = "newest"
	FeedSortOldest    FeedSort = "oldest"
	FeedSortPopular   FeedSort = "popular"
	FeedSortDiscussed FeedSort = "discussed"
)

// ParseFeedSort maps a raw sort value onto the FeedSort enumeration.
func ParseFeedSort(raw string) FeedSort {
	switch FeedSort(raw) {
	case FeedSortOldest, FeedSortPopular, FeedSortDiscussed:
		return FeedSort(raw)
	default:
		return FeedSortNewest
	}
}
