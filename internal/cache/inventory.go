package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%d"
	CourseKeyPrefix = "course:%s"
	CourseListKey   = "courses:all"
)

const (
	UserTTL   = 5 * time.Minute
	CourseTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func CourseKey(code string) string {
	return fmt.Sprintf(CourseKeyPrefix, code)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateCourses(ctx context.Context) {
	Invalidate(ctx, CourseListKey)
}
