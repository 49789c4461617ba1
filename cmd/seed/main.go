package main

import (
	"fmt"

	"muse-studio/pkg/config"
	"muse-studio/pkg/database"
	"muse-studio/pkg/logger"
	"muse-studio/pkg/models"

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
		email    string
		username string
		password string
	}{
		{"alice@test.com", "alice_beats", "password123"},
		{"bob@test.com", "bob_covers", "password123"},
		{"charlie@test.com", "charlie_video", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &models.User{
			Email:    userData.email,
			Username: userData.username,
			Password: string(hashedPassword),
			Role:     models.RoleUser,
			IsActive: true,
		}

		if err := user.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate user ID: %w", err)
		}

		var existingUser models.User
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		return fmt.Errorf("no users available for seeding projects")
	}

	seedProjects := []struct {
		ownerIdx    int
		projectType models.ProjectType
		title       string
		description string
		data        string
	}{
		{0, models.ProjectTypeSong, "Midnight Demo", "Verse-chorus sketch", `{"bpm":92,"sections":["intro","verse","chorus"]}`},
		{0, models.ProjectTypeAlbumCover, "Neon Skyline", "Cover draft for the EP", `{"palette":["#0ff","#f0f"],"layout":"centered"}`},
		{1, models.ProjectTypeVideo, "Tour Recap", "Lyric video settings", `{"resolution":"1080p","style":"vhs"}`},
	}

	for _, p := range seedProjects {
		project := &models.Project{
			UserID:      userIDs[p.ownerIdx%len(userIDs)],
			Type:        p.projectType,
			Title:       p.title,
			Description: p.description,
			Data:        p.data,
		}
		if err := project.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate project ID: %w", err)
		}

		var existing models.Project
		result := db.Where("user_id = ? AND title = ?", project.UserID, project.Title).First(&existing)
		if result.Error == nil {
			log.Info("Project %q already exists, skipping", project.Title)
			continue
		}

		if err := db.Create(project).Error; err != nil {
			log.Error("Failed to create project %q: %v", project.Title, err)
			continue
		}

		log.Info("Created project: %s (%s)", project.Title, project.Type)

		// Publish each seeded project so the gallery is browsable right away
		post := &models.Post{
			UserID:      project.UserID,
			ProjectID:   project.ID,
			Title:       project.Title,
			Description: project.Description,
		}
		if err := post.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate post ID: %w", err)
		}
		if err := db.Create(post).Error; err != nil {
			log.Error("Failed to publish project %q: %v", project.Title, err)
			continue
		}
		log.Info("Published post: %s", post.Title)
	}

	return nil
}
