// Package seed provides helpers to create catalog and demo data for the
// application database. Demo data is intended for development and testing
// only; the course catalog is seeded in every environment.
package seed

import (
	"fmt"
	"log"

	"campusboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalog is the built-in course list. Codes are stable identifiers that
// posts reference; re-running the seed updates names and cycles in place.
var catalog = []models.Course{
	{ID: "IS-101", Name: "Introduction to Computing", Cycle: 1},
	{ID: "IS-102", Name: "Discrete Mathematics", Cycle: 1},
	{ID: "IS-111", Name: "Programming Fundamentals", Cycle: 2},
	{ID: "IS-112", Name: "Computer Organization", Cycle: 2},
	{ID: "IS-121", Name: "Algorithms", Cycle: 3},
	{ID: "IS-122", Name: "Data Structures", Cycle: 3},
	{ID: "IS-131", Name: "Databases", Cycle: 4},
	{ID: "IS-132", Name: "Operating Systems", Cycle: 4},
	{ID: "IS-141", Name: "Computer Networks", Cycle: 5},
	{ID: "IS-142", Name: "Software Engineering", Cycle: 5},
	{ID: "IS-151", Name: "Distributed Systems", Cycle: 6},
	{ID: "IS-152", Name: "Machine Learning", Cycle: 6},
}

// Courses upserts the built-in course catalog. It is idempotent and safe to
// run at every startup.
func Courses(db *gorm.DB) error {
	for i := range catalog {
		course := catalog[i]
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "cycle"}),
		}).Create(&course).Error
		if err != nil {
			return fmt.Errorf("failed to seed course %s: %w", course.ID, err)
		}
	}

	log.Printf("course catalog seeded (%d courses)", len(catalog))
	return nil
}

// Catalog returns a copy of the built-in course list.
func Catalog() []models.Course {
	out := make([]models.Course, len(catalog))
	copy(out, catalog)
	return out
}
