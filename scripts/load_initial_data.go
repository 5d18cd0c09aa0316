package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"idea-marketplace-backend/internal/auth"
	"idea-marketplace-backend/internal/config"
	"idea-marketplace-backend/internal/database"
	"idea-marketplace-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type UserData struct {
	Email       string `yaml:"email"`
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	Team        string `yaml:"team,omitempty"`
	ManagedTeam string `yaml:"managed_team,omitempty"`
	Verified    *bool  `yaml:"verified,omitempty"`
}

type IdeaData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Team        string `yaml:"team"`
	Submitter   string `yaml:"submitter"`
	Size        string `yaml:"size,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type IdeasFile struct {
	Ideas []IdeaData `yaml:"ideas"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users, err := loadDataFromYAMLFiles(db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if cfg.IsDevelopment() {
		printDevTokens(cfg, users)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) ([]UserData, error) {
	var teams TeamsFile
	if err := loadYAML(dataDir, "teams", &teams); err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	var users UsersFile
	if err := loadYAML(dataDir, "users", &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	var ideas IdeasFile
	if err := loadYAML(dataDir, "ideas", &ideas); err != nil {
		return nil, fmt.Errorf("failed to load ideas: %w", err)
	}

	teamCreated := 0
	for _, teamData := range teams.Teams {
		created, err := createTeam(db, teamData)
		if err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams.Teams))

	userCreated := 0
	for _, userData := range users.Users {
		created, err := createUser(db, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users.Users))

	ideaCreated := 0
	for _, ideaData := range ideas.Ideas {
		created, err := createIdea(db, ideaData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create idea %q: %v", ideaData.Title, err)
			continue
		}
		if created {
			ideaCreated++
		}
	}
	log.Printf("📋 Ideas: %d created, %d total", ideaCreated, len(ideas.Ideas))

	return users.Users, nil
}

// loadYAML merges every YAML file under dataDir whose path mentions kind into out
func loadYAML(dataDir, kind string, out interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, out)
	})
}

func createTeam(db *gorm.DB, teamData TeamData) (bool, error) {
	var team models.Team
	err := db.Where("name = ?", teamData.Name).First(&team).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query team: %w", err)
	}

	team = models.Team{
		Name:        teamData.Name,
		Title:       teamData.Title,
		Description: teamData.Description,
	}
	if err := db.Create(&team).Error; err != nil {
		return false, fmt.Errorf("failed to create team: %w", err)
	}
	return true, nil
}

func createUser(db *gorm.DB, userData UserData) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.UserProfile
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.UserRoleUser
	if userData.Role != "" {
		role = models.UserRole(userData.Role)
	}
	verified := true
	if userData.Verified != nil {
		verified = *userData.Verified
	}

	user = models.UserProfile{
		Email:       email,
		Name:        userData.Name,
		Role:        role,
		Team:        optional(userData.Team),
		ManagedTeam: optional(userData.ManagedTeam),
		IsVerified:  verified,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

func createIdea(db *gorm.DB, ideaData IdeaData) (bool, error) {
	var existing models.Idea
	err := db.Where("title = ? AND team = ?", ideaData.Title, ideaData.Team).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query idea: %w", err)
	}

	idea := models.Idea{
		Title:          ideaData.Title,
		Description:    ideaData.Description,
		Team:           ideaData.Team,
		SubmitterEmail: strings.ToLower(ideaData.Submitter),
		Size:           models.IdeaSize(ideaData.Size),
		Priority:       models.IdeaPriority(ideaData.Priority),
		Status:         models.IdeaStatusOpen,
		SubStatus:      models.SubStatusNone,
	}
	if err := db.Create(&idea).Error; err != nil {
		return false, fmt.Errorf("failed to create idea: %w", err)
	}
	return true, nil
}

// printDevTokens logs a bearer token per seeded user for local testing
func printDevTokens(cfg *config.Config, users []UserData) {
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, 7*24*time.Hour)
	if err != nil {
		log.Printf("⚠️  Warning: cannot issue dev tokens: %v", err)
		return
	}
	for _, u := range users {
		token, err := tokens.GenerateToken(strings.ToLower(u.Email), u.Name)
		if err != nil {
			log.Printf("⚠️  Warning: token for %s: %v", u.Email, err)
			continue
		}
		log.Printf("🔑 %s: %s", u.Email, token)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
