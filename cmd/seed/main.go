// Command seed populates the database with the course catalog and optional
// demo data for development.
package main

import (
	"flag"
	"log"

	"campusboard/internal/config"
	"campusboard/internal/database"
	"campusboard/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 15, "Number of demo users to create")
	numPosts := flag.Int("posts", 40, "Number of demo posts to create")
	maxComments := flag.Int("comments", 6, "Max demo comments per post")
	demo := flag.Bool("demo", false, "Also create demo users, posts and comments")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Courses(db); err != nil {
		log.Fatalf("Course catalog seeding failed: %v", err)
	}

	if *demo {
		opts := seed.DemoOptions{
			NumUsers:           *numUsers,
			NumPosts:           *numPosts,
			MaxCommentsPerPost: *maxComments,
		}
		if err := seed.Demo(db, opts); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
	}

	log.Println("Seeding complete")
}
