package server

import (
	"strconv"

	"campusboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCourses handles GET /api/courses?cycle=N
func (s *Server) GetCourses(c *fiber.Ctx) error {
	var cycle *int
	if raw := c.Query("cycle"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid cycle filter"))
		}
		cycle = &n
	}

	courses, err := s.courseRepo.List(c.Context(), cycle)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(courses)
}
