package service

import (
	"context"
	"strings"
	"testing"

	"campusboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile_NonEmptyFieldsOnly(t *testing.T) {
	repo := newStubUserRepo(&models.User{
		ID:       7,
		Fullname: "Ana",
		Email:    "ana@x.com",
		Bio:      "old bio",
		Location: "Lima",
	})
	svc := NewUserService(repo)

	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID: 7,
		Bio:    "new bio",
	})
	require.NoError(t, err)
	assert.Equal(t, "new bio", user.Bio)
	assert.Equal(t, "Ana", user.Fullname)
	assert.Equal(t, "Lima", user.Location)
	require.Len(t, repo.updated, 1)
}

func TestUpdateProfile_CyclePointerDistinguishesAbsent(t *testing.T) {
	repo := newStubUserRepo(&models.User{ID: 7, Fullname: "Ana", Email: "ana@x.com", Cycle: 3})
	svc := NewUserService(repo)
	ctx := context.Background()

	// Absent cycle leaves the stored value alone.
	user, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 7, Bio: "b"})
	require.NoError(t, err)
	assert.Equal(t, 3, user.Cycle)

	// An explicit zero is applied.
	zero := 0
	user, err = svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 7, Cycle: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, user.Cycle)
}

func TestUpdateProfile_SocialLinks(t *testing.T) {
	repo := newStubUserRepo(&models.User{ID: 7, Fullname: "Ana", Email: "ana@x.com"})
	svc := NewUserService(repo)

	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   7,
		GitHub:   "https://github.com/ana",
		LinkedIn: "https://linkedin.com/in/ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/ana", user.Social.GitHub)
	assert.Equal(t, "https://linkedin.com/in/ana", user.Social.LinkedIn)
	assert.Empty(t, user.Social.Twitter)
}

func TestUpdateProfile_Validation(t *testing.T) {
	repo := newStubUserRepo(&models.User{ID: 7, Fullname: "Ana", Email: "ana@x.com"})
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID:   7,
		Fullname: strings.Repeat("a", 101),
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, err = svc.UpdateProfile(ctx, UpdateProfileInput{
		UserID: 7,
		Bio:    strings.Repeat("b", 501),
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, repo.updated)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 99})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestGetProfile(t *testing.T) {
	repo := newStubUserRepo(&models.User{ID: 7, Fullname: "Ana", Email: "ana@x.com"})
	svc := NewUserService(repo)

	user, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Fullname)
}
