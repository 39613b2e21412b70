package service

import (
	"context"

	"campusboard/internal/models"
	"campusboard/internal/repository"
)

// UserService owns profile reads and updates. Registration and login live in
// the auth handlers.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries a profile edit. Empty string fields leave prior
// values unchanged; Cycle is a pointer so zero is distinguishable from absent.
type UpdateProfileInput struct {
	UserID    uint
	Fullname  string
	Bio       string
	Cycle     *int
	Location  string
	Interests string
	Avatar    string
	GitHub    string
	LinkedIn  string
	Twitter   string
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the user by id.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies the non-empty fields of in to the stored profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500
	const maxFullnameLen = 100

	if in.Fullname != "" {
		if len(in.Fullname) > maxFullnameLen {
			return nil, models.NewValidationError("Fullname too long (max 100 characters)")
		}
		user.Fullname = in.Fullname
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Cycle != nil {
		user.Cycle = *in.Cycle
	}
	if in.Location != "" {
		user.Location = in.Location
	}
	if in.Interests != "" {
		user.Interests = in.Interests
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.GitHub != "" {
		user.Social.GitHub = in.GitHub
	}
	if in.LinkedIn != "" {
		user.Social.LinkedIn = in.LinkedIn
	}
	if in.Twitter != "" {
		user.Social.Twitter = in.Twitter
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
