package service

import (
	"context"
	"strings"

	"campusboard/internal/models"
	"campusboard/internal/repository"

	"github.com/microcosm-cc/bluemonday"
)

// MaxAttachmentsPerPost caps the files accepted per create/edit request. The
// HTTP body limit is sized from it, so a full batch of maximum-size files
// still reaches validation.
const MaxAttachmentsPerPost = 5

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

// PostService owns the post lifecycle: creation against a resolvable course,
// ownership-checked edits, and the view-counting detail read.
type PostService struct {
	postRepo      repository.PostRepository
	courseRepo    repository.CourseRepository
	uploads       *UploadService
	titlePolicy   *bluemonday.Policy
	contentPolicy *bluemonday.Policy
}

// CreatePostInput carries the fields of a new post. Files may be empty.
type CreatePostInput struct {
	AuthorID   uint
	Title      string
	Content    string
	Cycle      int
	CourseCode string
	Files      []UploadFile
}

// UpdatePostInput carries an edit. Empty Title/Content leave prior values
// unchanged; Files are appended, never replacing existing attachments.
type UpdatePostInput struct {
	AuthorID uint
	PostID   uint
	Title    string
	Content  string
	Files    []UploadFile
}

// NewPostService creates a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	courseRepo repository.CourseRepository,
	uploads *UploadService,
) *PostService {
	return &PostService{
		postRepo:      postRepo,
		courseRepo:    courseRepo,
		uploads:       uploads,
		titlePolicy:   bluemonday.StrictPolicy(),
		contentPolicy: bluemonday.UGCPolicy(),
	}
}

// CreatePost validates input, resolves the course code, stores the files and
// persists the post. An unresolved course code fails before any file or Post
// row is written.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(s.titlePolicy.Sanitize(in.Title))
	content := strings.TrimSpace(s.contentPolicy.Sanitize(in.Content))

	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}
	if in.AuthorID == 0 {
		return nil, models.NewValidationError("Author is required")
	}
	if strings.TrimSpace(in.CourseCode) == "" {
		return nil, models.NewValidationError("Course code is required")
	}
	if len(in.Files) > MaxAttachmentsPerPost {
		return nil, models.NewValidationError("Too many files (max 5)")
	}

	course, err := s.courseRepo.GetByCode(ctx, strings.TrimSpace(in.CourseCode))
	if err != nil {
		return nil, err
	}

	attachments, err := s.uploads.StoreAll(in.Files)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       title,
		Content:     content,
		Cycle:       in.Cycle,
		UserID:      in.AuthorID,
		CourseID:    course.ID,
		Attachments: attachments,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost applies an ownership-checked edit. The acting author id must
// equal the stored author id exactly; a mismatch never mutates the post.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.AuthorID {
		return nil, models.NewUnauthorizedError("You can only edit your own posts")
	}
	if len(in.Files) > MaxAttachmentsPerPost {
		return nil, models.NewValidationError("Too many files (max 5)")
	}

	if title := strings.TrimSpace(s.titlePolicy.Sanitize(in.Title)); title != "" {
		if len(title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 300 characters)")
		}
		post.Title = title
	}
	if content := strings.TrimSpace(s.contentPolicy.Sanitize(in.Content)); content != "" {
		if len(content) > maxContentLen {
			return nil, models.NewValidationError("Content too long (max 50000 characters)")
		}
		post.Content = content
	}

	attachments, err := s.uploads.StoreAll(in.Files)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	if err := s.postRepo.AddAttachments(ctx, post.ID, attachments); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns the post detail and bumps its view counter. The feed never
// takes this path.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	if err := s.postRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, id)
}
