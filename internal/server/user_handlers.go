package server

import (
	"campusboard/internal/models"
	"campusboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/user/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateProfile handles PUT /api/user/:id. The body is a multipart form with
// text fields plus an optional avatar file; absent fields keep prior values.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Fullname  string `json:"fullname" form:"fullname"`
		Bio       string `json:"bio" form:"bio"`
		Cycle     *int   `json:"cycle" form:"cycle"`
		Location  string `json:"location" form:"location"`
		Interests string `json:"interests" form:"interests"`
		GitHub    string `json:"github" form:"github"`
		LinkedIn  string `json:"linkedin" form:"linkedin"`
		Twitter   string `json:"twitter" form:"twitter"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Resolve the user before touching disk so a PUT for an unknown id
	// cannot leave an orphan avatar file in the upload dir.
	if _, lookupErr := s.userService.GetProfile(c.Context(), id); lookupErr != nil {
		return respondServiceError(c, lookupErr)
	}

	avatarPath := ""
	if fh, fhErr := c.FormFile("avatar"); fhErr == nil && fh != nil {
		file, readErr := readUploadFile(fh)
		if readErr != nil {
			return respondServiceError(c, readErr)
		}
		att, storeErr := s.uploadService.Store(file)
		if storeErr != nil {
			return respondServiceError(c, storeErr)
		}
		avatarPath = att.Path
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:    id,
		Fullname:  req.Fullname,
		Bio:       req.Bio,
		Cycle:     req.Cycle,
		Location:  req.Location,
		Interests: req.Interests,
		Avatar:    avatarPath,
		GitHub:    req.GitHub,
		LinkedIn:  req.LinkedIn,
		Twitter:   req.Twitter,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}
