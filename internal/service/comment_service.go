package service

import (
	"context"
	"strings"

	"campusboard/internal/models"
	"campusboard/internal/repository"

	"github.com/microcosm-cc/bluemonday"
)

const maxCommentLen = 10000

// CommentService creates and lists comments and keeps the parent post's
// denormalized comment counter in step (the increment itself lives in the
// repository transaction).
type CommentService struct {
	commentRepo   repository.CommentRepository
	postRepo      repository.PostRepository
	contentPolicy *bluemonday.Policy
}

// CreateCommentInput carries a new comment. ParentID threads the comment
// under another comment on the same post.
type CreateCommentInput struct {
	AuthorID uint
	PostID   uint
	Content  string
	ParentID *uint
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		contentPolicy: bluemonday.UGCPolicy(),
	}
}

// CreateComment validates the target post and optional parent, persists the
// comment and returns it with the author resolved. Creation against a
// missing post fails fast; orphan comments are never written.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(s.contentPolicy.Sanitize(in.Content))
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}
	if in.AuthorID == 0 {
		return nil, models.NewValidationError("Author is required")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment must belong to the same post")
		}
	}

	comment := &models.Comment{
		Content:  content,
		UserID:   in.AuthorID,
		PostID:   in.PostID,
		ParentID: in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the flat, creation-ordered comment list for a post
// with authors resolved. Reply-tree reconstruction is a client concern.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
