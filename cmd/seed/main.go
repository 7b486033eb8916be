// Seeds a development database with two users, two posts, a small comment
// thread and a couple of likes. Skips when users already exist.
package main

import (
	"os"

	"quibble/internal/db"
	"quibble/internal/models"
	"quibble/internal/store"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, reading config from environment")
	}

	gdb, err := db.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	st := store.New(gdb)

	count, err := st.CountUsers()
	if err != nil {
		log.Fatalf("failed to inspect database: %v", err)
	}
	if count > 0 {
		log.Info("database already seeded, skipping")
		return
	}

	farhan := models.User{Name: "Farhan"}
	sarah := models.User{Name: "Sarah"}
	for _, u := range []*models.User{&farhan, &sarah} {
		if err := st.CreateUser(u); err != nil {
			log.Fatalf("failed to create user %s: %v", u.Name, err)
		}
	}

	post1 := models.Post{Title: "Roadmaster", Body: "A long ramble about restoring an old touring bicycle."}
	post2 := models.Post{Title: "Gravel Grinder", Body: "Notes from a weekend on unpaved backroads."}
	for _, p := range []*models.Post{&post1, &post2} {
		if err := st.CreatePost(p); err != nil {
			log.Fatalf("failed to create post %s: %v", p.Title, err)
		}
	}

	comment1 := models.Comment{Message: "Great writeup, thanks!", UserID: farhan.ID, PostID: post1.ID}
	comment2 := models.Comment{Message: "Which tires did you end up with?", UserID: sarah.ID, PostID: post1.ID}
	comment3 := models.Comment{Message: "Tried this route last fall.", UserID: farhan.ID, PostID: post2.ID}
	for _, c := range []*models.Comment{&comment1, &comment2, &comment3} {
		if err := st.CreateComment(c); err != nil {
			log.Fatalf("failed to create comment: %v", err)
		}
	}

	replies := []models.Comment{
		{Message: "Went with 38mm slicks in the end.", UserID: farhan.ID, PostID: post1.ID, ParentID: &comment2.ID},
		{Message: "Same! The creek crossing is rough.", UserID: sarah.ID, PostID: post2.ID, ParentID: &comment3.ID},
	}
	for i := range replies {
		if err := st.CreateComment(&replies[i]); err != nil {
			log.Fatalf("failed to create reply: %v", err)
		}
	}

	likes := []models.Like{
		{UserID: farhan.ID, CommentID: comment2.ID},
		{UserID: sarah.ID, CommentID: comment3.ID},
	}
	for i := range likes {
		if err := st.CreateLike(&likes[i]); err != nil {
			log.Fatalf("failed to create like: %v", err)
		}
	}

	log.Info("seed data created successfully")
}
