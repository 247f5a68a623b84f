package main

import (
	"context"
	"log"

	"userhub/internal/config"
	"userhub/internal/db"
	"userhub/internal/repository"
	"userhub/internal/seed"
	"userhub/internal/service"
)

// Seeds the demo user data set into the MySQL backend. The in-memory
// backend seeds at startup (SEED_DEMO_USERS) or via POST /seed/users.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewUserRepository(gormDB)
	svc := service.NewUserService(repo, nil)

	seeded, err := seed.Apply(context.Background(), svc)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", seeded)
	log.Printf("  - Already present: %d", len(seed.DemoUsers())-seeded)
}
