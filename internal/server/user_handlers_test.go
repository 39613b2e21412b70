package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	_, app, db := newTestServer(t)
	user := seedTestUser(t, db, "Ana", "ana@x.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/user/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, float64(user.ID), body["id"])
	assert.Equal(t, "Ana", body["fullname"])
	assert.NotContains(t, body, "password")
}

func TestGetProfile_NotFound(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/user/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetProfile_BadID(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/user/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProfile_JSONBody(t *testing.T) {
	_, app, db := newTestServer(t)
	seedTestUser(t, db, "Ana", "ana@x.com")

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/user/1", map[string]any{
		"bio":      "Systems student",
		"location": "Lima",
		"github":   "https://github.com/ana",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Systems student", body["bio"])
	assert.Equal(t, "Lima", body["location"])
	assert.Equal(t, "Ana", body["fullname"])
	social, ok := body["social"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://github.com/ana", social["github"])
}

func TestUpdateProfile_MultipartWithAvatar(t *testing.T) {
	_, app, db := newTestServer(t)
	seedTestUser(t, db, "Ana", "ana@x.com")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("bio", "with avatar"))
	part, err := w.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/user/1", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "with avatar", body["bio"])
	avatar, _ := body["avatar"].(string)
	assert.True(t, strings.HasPrefix(avatar, "/uploads/"), "got %q", avatar)
	assert.True(t, strings.HasSuffix(avatar, "-me.png"), "got %q", avatar)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/user/999", map[string]any{
		"bio": "nobody home",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateProfile_UnknownUserStoresNoAvatar(t *testing.T) {
	s, app, _ := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/user/999", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	entries, err := os.ReadDir(s.config.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
