package repository

import (
	"context"
	"errors"
	"strings"

	"campusboard/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Feed(ctx context.Context, search string, sort models.FeedSort) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	AddAttachments(ctx context.Context, postID uint, attachments []models.Attachment) error
	IncrementViews(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Course").
		Preload("Attachments").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// Feed selects posts matched by the literal substring search and orders them
// by the requested sort. The search text is escaped before being bound so
// LIKE wildcards in user input have no pattern meaning.
func (r *postRepository) Feed(ctx context.Context, search string, sort models.FeedSort) ([]*models.Post, error) {
	var posts []*models.Post

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Course").
		Preload("Attachments")

	if search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	if err := applyFeedSort(q, sort).Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applyFeedSort appends the ORDER BY clause for the requested sort. Post id
// is the deterministic secondary key on ties.
func applyFeedSort(db *gorm.DB, sort models.FeedSort) *gorm.DB {
	switch sort {
	case models.FeedSortOldest:
		return db.Order("created_at ASC, id ASC")
	case models.FeedSortPopular:
		return db.Order("views DESC, id DESC")
	case models.FeedSortDiscussed:
		return db.Order("comments_count DESC, id DESC")
	default:
		return db.Order("created_at DESC, id DESC")
	}
}

// escapeLike neutralizes LIKE pattern characters in user-supplied text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	// Save without touching associations so existing attachment rows are
	// never rewritten; new attachments go through AddAttachments.
	if err := r.db.WithContext(ctx).Omit("Attachments", "User", "Course").Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) AddAttachments(ctx context.Context, postID uint, attachments []models.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}
	for i := range attachments {
		attachments[i].PostID = postID
	}
	if err := r.db.WithContext(ctx).Create(&attachments).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// IncrementViews bumps the view counter with a single atomic UPDATE.
func (r *postRepository) IncrementViews(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}
