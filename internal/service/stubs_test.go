package service

import (
	"context"

	"campusboard/internal/models"
)

// stubPostRepo is a hand-rolled PostRepository for service unit tests.
type stubPostRepo struct {
	posts map[uint]*models.Post

	feedPosts  []*models.Post
	feedErr    error
	lastSearch string
	lastSort   models.FeedSort

	created     []*models.Post
	updated     []*models.Post
	attachments map[uint][]models.Attachment
	viewBumps   []uint
	nextID      uint
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{
		posts:       map[uint]*models.Post{},
		attachments: map[uint][]models.Attachment{},
		nextID:      1,
	}
}

// add stores a post; attachments live only in the side map so repeated
// reads never duplicate them.
func (s *stubPostRepo) add(post *models.Post) *models.Post {
	if post.ID == 0 {
		post.ID = s.nextID
		s.nextID++
	}
	s.attachments[post.ID] = append(s.attachments[post.ID], post.Attachments...)
	stored := *post
	stored.Attachments = nil
	s.posts[post.ID] = &stored
	return post
}

func (s *stubPostRepo) Create(_ context.Context, post *models.Post) error {
	s.add(post)
	s.created = append(s.created, post)
	return nil
}

func (s *stubPostRepo) GetByID(_ context.Context, id uint) (*models.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("Post", id)
	}
	copied := *post
	copied.Attachments = append(copied.Attachments, s.attachments[id]...)
	return &copied, nil
}

func (s *stubPostRepo) Feed(_ context.Context, search string, sort models.FeedSort) ([]*models.Post, error) {
	s.lastSearch = search
	s.lastSort = sort
	return s.feedPosts, s.feedErr
}

func (s *stubPostRepo) Update(_ context.Context, post *models.Post) error {
	stored := *post
	stored.Attachments = nil
	s.posts[post.ID] = &stored
	s.updated = append(s.updated, post)
	return nil
}

func (s *stubPostRepo) AddAttachments(_ context.Context, postID uint, attachments []models.Attachment) error {
	s.attachments[postID] = append(s.attachments[postID], attachments...)
	return nil
}

func (s *stubPostRepo) IncrementViews(_ context.Context, id uint) error {
	if _, ok := s.posts[id]; !ok {
		return models.NewNotFoundError("Post", id)
	}
	s.posts[id].Views++
	s.viewBumps = append(s.viewBumps, id)
	return nil
}

// stubCourseRepo is a hand-rolled CourseRepository.
type stubCourseRepo struct {
	courses map[string]*models.Course
}

func newStubCourseRepo(courses ...*models.Course) *stubCourseRepo {
	s := &stubCourseRepo{courses: map[string]*models.Course{}}
	for _, c := range courses {
		s.courses[c.ID] = c
	}
	return s
}

func (s *stubCourseRepo) GetByCode(_ context.Context, code string) (*models.Course, error) {
	course, ok := s.courses[code]
	if !ok {
		return nil, models.NewNotFoundError("Course", code)
	}
	return course, nil
}

func (s *stubCourseRepo) List(_ context.Context, cycle *int) ([]models.Course, error) {
	var out []models.Course
	for _, c := range s.courses {
		if cycle == nil || c.Cycle == *cycle {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *stubCourseRepo) Upsert(_ context.Context, course *models.Course) error {
	s.courses[course.ID] = course
	return nil
}

// stubCommentRepo is a hand-rolled CommentRepository.
type stubCommentRepo struct {
	comments map[uint]*models.Comment
	byPost   map[uint][]*models.Comment
	created  []*models.Comment
	nextID   uint
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{
		comments: map[uint]*models.Comment{},
		byPost:   map[uint][]*models.Comment{},
		nextID:   1,
	}
}

func (s *stubCommentRepo) add(comment *models.Comment) *models.Comment {
	if comment.ID == 0 {
		comment.ID = s.nextID
		s.nextID++
	}
	s.comments[comment.ID] = comment
	s.byPost[comment.PostID] = append(s.byPost[comment.PostID], comment)
	return comment
}

func (s *stubCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	s.add(comment)
	s.created = append(s.created, comment)
	return nil
}

func (s *stubCommentRepo) GetByID(_ context.Context, id uint) (*models.Comment, error) {
	comment, ok := s.comments[id]
	if !ok {
		return nil, models.NewNotFoundError("Comment", id)
	}
	return comment, nil
}

func (s *stubCommentRepo) ListByPost(_ context.Context, postID uint) ([]*models.Comment, error) {
	return s.byPost[postID], nil
}

// stubUserRepo is a hand-rolled UserRepository.
type stubUserRepo struct {
	users   map[uint]*models.User
	updated []*models.User
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	s := &stubUserRepo{users: map[uint]*models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	copied := *user
	return &copied, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) Update(_ context.Context, user *models.User) error {
	s.users[user.ID] = user
	s.updated = append(s.updated, user)
	return nil
}
