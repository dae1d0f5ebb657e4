package main

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sportmatch/internal/auth"
	"sportmatch/internal/config"
	"sportmatch/internal/db"
	"sportmatch/internal/logger"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

var starterSports = []string{
	"Football",
	"Basketball",
	"Tennis",
	"Badminton",
	"Volleyball",
	"Running",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatalf("config: %v", err)
	}
	log := logger.New(logger.Config{Debug: cfg.LogDebug}).Named("seed")
	log.Info("Starting seed script...")

	gormDB, err := db.Open(cfg.DatabaseURL, cfg.LogDebug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations completed")

	store := repository.NewStore(gormDB)
	ctx := context.Background()

	created, err := seedSports(ctx, store.Sports(), starterSports)
	if err != nil {
		log.Fatalf("Failed to seed sports: %v", err)
	}
	log.Infow("Sports seeded", "created", created, "total", len(starterSports))

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin account")
		return
	}
	admin, err := seedAdmin(ctx, store.Users(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Infow("Admin account ready", "user_id", admin.ID, "email", admin.Email)
}

// seedSports creates each missing sport by name and reports how many were new.
func seedSports(ctx context.Context, repo repository.SportRepository, names []string) (int, error) {
	created := 0
	for _, name := range names {
		_, err := repo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("check sport %q: %w", name, err)
		}
		if err := repo.Create(ctx, &model.Sport{Name: name}); err != nil {
			return created, fmt.Errorf("create sport %q: %w", name, err)
		}
		created++
	}
	return created, nil
}

// seedAdmin returns the user with the given email, creating it with the admin
// role if absent. An existing account is left untouched.
func seedAdmin(ctx context.Context, repo repository.UserRepository, username, email, password string) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	admin := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}
