package repository

import (
	"context"
	"errors"

	"campusboard/internal/cache"
	"campusboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourseRepository defines persistence operations for the static course catalog.
type CourseRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context, cycle *int) ([]models.Course, error)
	Upsert(ctx context.Context, course *models.Course) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository returns a new CourseRepository implementation.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	var course models.Course
	key := cache.CourseKey(code)

	err := cache.Aside(ctx, key, &course, cache.CourseTTL, func() error {
		if err := r.db.WithContext(ctx).First(&course, "id = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Course", code)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context, cycle *int) ([]models.Course, error) {
	var courses []models.Course

	fetch := func() error {
		q := r.db.WithContext(ctx).Model(&models.Course{})
		if cycle != nil {
			q = q.Where("cycle = ?", *cycle)
		}
		if err := q.Order("cycle ASC, name ASC").Find(&courses).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only the unfiltered catalog is cached; cycle-filtered lists are cheap.
	if cycle == nil {
		if err := cache.Aside(ctx, cache.CourseListKey, &courses, cache.CourseTTL, fetch); err != nil {
			return nil, err
		}
		return courses, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Upsert(ctx context.Context, course *models.Course) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "cycle"}),
	}).Create(course).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.CourseKey(course.ID))
	cache.InvalidateCourses(ctx)
	return nil
}
