package repository

import (
	"testing"

	"campusboard/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for repository tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Post{},
		&models.Attachment{},
		&models.Comment{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, fullname, email string) *models.User {
	t.Helper()
	user := &models.User{Fullname: fullname, Email: email, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, id, name string, cycle int) *models.Course {
	t.Helper()
	course := &models.Course{ID: id, Name: name, Cycle: cycle}
	require.NoError(t, db.Create(course).Error)
	return course
}

func createTestPost(t *testing.T, db *gorm.DB, user *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "content of " + title, UserID: user.ID}
	require.NoError(t, db.Create(post).Error)
	return post
}
