package service

import (
	"context"
	"time"

	"campusboard/internal/models"
	"campusboard/internal/repository"
)

// PlaceholderCourseName is substituted when a post's course reference does
// not resolve; the feed never fails on a dangling course.
const PlaceholderCourseName = "General Course"

// FeedAuthor is the author view joined into a feed item. The password never
// appears here by construction.
type FeedAuthor struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// FeedItem is the flattened post view-model emitted by the feed.
type FeedItem struct {
	ID            uint                `json:"id"`
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	Cycle         int                 `json:"cycle"`
	CourseID      string              `json:"course_id"`
	CreatedAt     time.Time           `json:"created_at"`
	Views         int                 `json:"views"`
	Attachments   []models.Attachment `json:"attachments"`
	CommentsCount int                 `json:"comments_count"`
	Author        FeedAuthor          `json:"author"`
	CourseName    string              `json:"course_name"`
	Course        *models.Course      `json:"course"`
}

// FeedQuery selects and orders the feed. Search is a literal, case-insensitive
// substring over title and content; Sort is the closed FeedSort enumeration.
type FeedQuery struct {
	Search string
	Sort   models.FeedSort
}

// FeedService builds the post feed: filter, sort, author/course join, and
// flattened projection. It is a pure read path and never touches counters.
type FeedService struct {
	postRepo repository.PostRepository
}

// NewFeedService creates a new FeedService.
func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// ListFeed returns the ordered sequence of projected feed items.
func (s *FeedService) ListFeed(ctx context.Context, q FeedQuery) ([]FeedItem, error) {
	posts, err := s.postRepo.Feed(ctx, q.Search, q.Sort)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, projectFeedItem(p))
	}
	return items, nil
}

func projectFeedItem(p *models.Post) FeedItem {
	item := FeedItem{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Cycle:     p.Cycle,
		CourseID:  p.CourseID,
		CreatedAt: p.CreatedAt,
		Views:     p.Views,
		// Attachments default to an empty slice so the JSON field is
		// always an array.
		Attachments:   []models.Attachment{},
		CommentsCount: p.CommentsCount,
		Author: FeedAuthor{
			Fullname: p.User.Fullname,
			Email:    p.User.Email,
			Avatar:   p.User.Avatar,
		},
		CourseName: PlaceholderCourseName,
	}
	if len(p.Attachments) > 0 {
		item.Attachments = p.Attachments
	}
	if p.Course != nil {
		item.CourseName = p.Course.Name
		item.Course = p.Course
	}
	return item
}
