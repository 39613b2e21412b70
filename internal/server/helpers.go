package server

import (
	"errors"
	"io"
	"mime/multipart"

	"campusboard/internal/models"
	"campusboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		label := "ID"
		if param == "postId" {
			label = "post ID"
		}
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+label))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	status := fiber.StatusInternalServerError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "UNAUTHORIZED":
			status = fiber.StatusForbidden
		}
	}
	return models.RespondWithError(c, status, err)
}

// collectUploadFiles reads the multipart files under the given form field
// into memory. A request without a multipart form yields an empty slice.
func collectUploadFiles(c *fiber.Ctx, field string) ([]service.UploadFile, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}

	headers := form.File[field]
	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUploadFile(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func readUploadFile(fh *multipart.FileHeader) (service.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return service.UploadFile{}, models.NewInternalError(err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return service.UploadFile{}, models.NewInternalError(err)
	}

	return service.UploadFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
