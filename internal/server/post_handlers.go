package server

import (
	"campusboard/internal/models"
	"campusboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts?search=...&sort=...
func (s *Server) GetFeed(c *fiber.Ctx) error {
	items, err := s.feedService.ListFeed(c.Context(), service.FeedQuery{
		Search: c.Query("search"),
		Sort:   models.ParseFeedSort(c.Query("sort")),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(items)
}

// CreatePost handles POST /api/posts. The body is a multipart form with the
// post fields plus up to five files under the "files" field.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title      string `json:"title" form:"title"`
		Content    string `json:"content" form:"content"`
		Cycle      int    `json:"cycle" form:"cycle"`
		CourseCode string `json:"courseCode" form:"courseCode"`
		AuthorID   uint   `json:"authorId" form:"authorId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	files, err := collectUploadFiles(c, "files")
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID:   req.AuthorID,
		Title:      req.Title,
		Content:    req.Content,
		Cycle:      req.Cycle,
		CourseCode: req.CourseCode,
		Files:      files,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id and counts the read as a view.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id. The acting author id arrives in the
// request body and must match the stored author; new files are appended to
// the existing attachments.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title" form:"title"`
		Content  string `json:"content" form:"content"`
		AuthorID uint   `json:"authorId" form:"authorId"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	files, err := collectUploadFiles(c, "files")
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		AuthorID: req.AuthorID,
		PostID:   id,
		Title:    req.Title,
		Content:  req.Content,
		Files:    files,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}
