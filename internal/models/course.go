package models

// Course is static reference data identified by an external short code
// such as "IS-121". Courses are seeded at startup, never created via the API.
type Course struct {
	ID    string `gorm:"primaryKey;size:16" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Cycle int    `gorm:"index" json:"cycle"`
}
