package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"campusboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoOptions controls demo data volume.
type DemoOptions struct {
	NumUsers           int
	NumPosts           int
	MaxCommentsPerPost int
}

// DefaultDemoOptions returns a small but browsable data set.
func DefaultDemoOptions() DemoOptions {
	return DemoOptions{
		NumUsers:           15,
		NumPosts:           40,
		MaxCommentsPerPost: 6,
	}
}

// Demo populates the database with fake users, posts and comments against the
// built-in course catalog. The catalog must be seeded first.
func Demo(db *gorm.DB, opts DemoOptions) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	users, err := createDemoUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create demo users: %w", err)
	}
	log.Printf("demo: %d users created", len(users))

	posts, err := createDemoPosts(db, r, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create demo posts: %w", err)
	}
	log.Printf("demo: %d posts created", len(posts))

	if err := createDemoComments(db, r, users, posts, opts.MaxCommentsPerPost); err != nil {
		return fmt.Errorf("failed to create demo comments: %w", err)
	}

	return nil
}

func createDemoUsers(db *gorm.DB, n int) ([]*models.User, error) {
	// All demo users share one password so the hash is computed once.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Fullname:  gofakeit.Name(),
			Email:     fmt.Sprintf("demo%d@%s", i, gofakeit.DomainName()),
			Password:  string(hashed),
			Bio:       gofakeit.Sentence(8),
			Cycle:     gofakeit.Number(1, 6),
			Location:  gofakeit.City(),
			Interests: gofakeit.Hobby(),
			Social: models.SocialLinks{
				GitHub: "https://github.com/" + gofakeit.Username(),
			},
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createDemoPosts(db *gorm.DB, r *rand.Rand, users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[r.Intn(len(users))]
		course := catalog[r.Intn(len(catalog))]

		post := &models.Post{
			Title:    gofakeit.Sentence(5),
			Content:  gofakeit.Paragraph(1, 3, 6, "\n"),
			Cycle:    course.Cycle,
			UserID:   author.ID,
			CourseID: course.ID,
			Views:    r.Intn(500),
		}
		// Spread creation times over the past 90 days for realistic feeds.
		daysBack := r.Intn(90)
		post.CreatedAt = time.Now().
			Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(r.Intn(24))*time.Hour)

		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createDemoComments(db *gorm.DB, r *rand.Rand, users []*models.User, posts []*models.Post, maxPerPost int) error {
	if len(users) == 0 || maxPerPost <= 0 {
		return nil
	}

	total := 0
	for _, post := range posts {
		n := r.Intn(maxPerPost + 1)
		var prev *models.Comment
		for i := 0; i < n; i++ {
			comment := &models.Comment{
				Content: gofakeit.Sentence(10),
				UserID:  users[r.Intn(len(users))].ID,
				PostID:  post.ID,
			}
			// Occasionally thread under the previous comment.
			if prev != nil && r.Intn(3) == 0 {
				comment.ParentID = &prev.ID
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
			prev = comment
			total++
		}
		if n > 0 {
			err := db.Model(&models.Post{}).
				Where("id = ?", post.ID).
				UpdateColumn("comments_count", n).Error
			if err != nil {
				return err
			}
		}
	}

	log.Printf("demo: %d comments created", total)
	return nil
}
