package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"notesapi/internal/auth"
	"notesapi/internal/config"
	"notesapi/internal/db"
	"notesapi/internal/model"
	"notesapi/internal/repository"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

var starterNotes = []model.Note{
	{Title: "Welcome", Body: "This is your first note."},
	{Title: "Groceries", Body: "Milk, eggs, coffee."},
	{Title: "Ideas", Body: "Things worth writing down."},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)

	if _, err := userRepo.FindByEmail(ctx, demoEmail); err == gorm.ErrRecordNotFound {
		hashed, err := auth.HashPassword(demoPassword)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		if err := userRepo.Create(ctx, &model.User{Email: demoEmail, PasswordHash: hashed}); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s", demoEmail)
	} else if err != nil {
		log.Fatalf("Failed to check demo user: %v", err)
	} else {
		log.Printf("Demo user %s already exists, skipping", demoEmail)
	}

	existing, err := noteRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list notes: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Notes table already has %d notes, skipping", len(existing))
		return
	}

	for i := range starterNotes {
		if err := noteRepo.Create(ctx, &starterNotes[i]); err != nil {
			log.Fatalf("Failed to create note %q: %v", starterNotes[i].Title, err)
		}
	}
	log.Printf("Seeded %d starter notes", len(starterNotes))
}
