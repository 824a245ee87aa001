package main

import (
	"fmt"

	"snapboard/internal/model"
	"snapboard/pkg/config"
	"snapboard/pkg/database"
	"snapboard/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		nickname string
		password string
	}{
		{"alice", "password123"},
		{"bob", "password123"},
		{"charlie", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, u := range testUsers {
		var existing model.UserModel
		if err := db.Where("nickname = ?", u.nickname).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", u.nickname)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.nickname, err)
		}

		user := model.UserModel{
			Nickname: u.nickname,
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.nickname, err)
		}

		log.Info("Created user %s", u.nickname)
		userIDs = append(userIDs, user.ID)
	}

	testPosts := []struct {
		title   string
		content string
		tags    string
	}{
		{"Hello", "First post on the board", "intro"},
		{"Weekend hike", "Photos coming soon", "outdoors, hiking"},
		{"Recipe: pancakes", "Flour, eggs, milk. That's it.", "food"},
	}

	for i, p := range testPosts {
		var count int64
		db.Model(&model.PostModel{}).Where("title = ?", p.title).Count(&count)
		if count > 0 {
			log.Info("Post %q already exists, skipping", p.title)
			continue
		}

		post := model.PostModel{
			AuthorID: userIDs[i%len(userIDs)],
			Title:    p.title,
			Content:  p.content,
			Tags:     p.tags,
		}
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to create post %q: %w", p.title, err)
		}

		log.Info("Created post %q", p.title)
	}

	return nil
}
