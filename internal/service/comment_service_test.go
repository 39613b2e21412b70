package service

import (
	"context"
	"strings"
	"testing"

	"campusboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_FailsFastOnMissingPost(t *testing.T) {
	commentRepo := newStubCommentRepo()
	postRepo := newStubPostRepo()
	svc := NewCommentService(commentRepo, postRepo)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		AuthorID: 7,
		PostID:   99,
		Content:  "orphan",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Empty(t, commentRepo.created)
}

func TestCreateComment_ParentMustBelongToSamePost(t *testing.T) {
	commentRepo := newStubCommentRepo()
	postRepo := newStubPostRepo()
	svc := NewCommentService(commentRepo, postRepo)

	postRepo.add(&models.Post{ID: 1, Title: "a", Content: "c", UserID: 7})
	postRepo.add(&models.Post{ID: 2, Title: "b", Content: "c", UserID: 7})
	parent := commentRepo.add(&models.Comment{Content: "root", UserID: 7, PostID: 2})

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		AuthorID: 7,
		PostID:   1,
		Content:  "cross-post reply",
		ParentID: &parent.ID,
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, commentRepo.created)
}

func TestCreateComment_MissingParent(t *testing.T) {
	commentRepo := newStubCommentRepo()
	postRepo := newStubPostRepo()
	svc := NewCommentService(commentRepo, postRepo)

	postRepo.add(&models.Post{ID: 1, Title: "a", Content: "c", UserID: 7})
	missing := uint(42)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		AuthorID: 7,
		PostID:   1,
		Content:  "reply to nothing",
		ParentID: &missing,
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCreateComment_ThreadedReply(t *testing.T) {
	commentRepo := newStubCommentRepo()
	postRepo := newStubPostRepo()
	svc := NewCommentService(commentRepo, postRepo)

	postRepo.add(&models.Post{ID: 1, Title: "a", Content: "c", UserID: 7})
	parent := commentRepo.add(&models.Comment{Content: "root", UserID: 7, PostID: 1})

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		AuthorID: 8,
		PostID:   1,
		Content:  "  a threaded reply  ",
		ParentID: &parent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "a threaded reply", comment.Content)
	require.NotNil(t, comment.ParentID)
	assert.Equal(t, parent.ID, *comment.ParentID)
	require.Len(t, commentRepo.created, 1)
}

func TestCreateComment_Validation(t *testing.T) {
	commentRepo := newStubCommentRepo()
	postRepo := newStubPostRepo()
	svc := NewCommentService(commentRepo, postRepo)
	postRepo.add(&models.Post{ID: 1, Title: "a", Content: "c", UserID: 7})
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateCommentInput
	}{
		{"empty content", CreateCommentInput{AuthorID: 7, PostID: 1}},
		{"whitespace content", CreateCommentInput{AuthorID: 7, PostID: 1, Content: "   "}},
		{"missing author", CreateCommentInput{PostID: 1, Content: "hi"}},
		{"too long", CreateCommentInput{
			AuthorID: 7, PostID: 1, Content: strings.Repeat("x", 10001),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateComment(ctx, tt.in)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestListComments_RequiresExistingPost(t *testing.T) {
	commentRepo := newStubCommentRepo()
	postRepo := newStubPostRepo()
	svc := NewCommentService(commentRepo, postRepo)

	_, err := svc.ListComments(context.Background(), 99)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	postRepo.add(&models.Post{ID: 1, Title: "a", Content: "c", UserID: 7})
	commentRepo.add(&models.Comment{Content: "hello", UserID: 7, PostID: 1})

	comments, err := svc.ListComments(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
