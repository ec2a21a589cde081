package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mapalk/mapa_core/seed/seeders"
	"github.com/mapalk/mapa_core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, users, courses, progress, achievements")
		dataDir  = flag.String("data", "", "Data directory (overrides DATA_DIR env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "./data"
		}
	}

	storage := services.NewStorageService(dir)
	if err := storage.Start(); err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	log.Printf("Seeding data directory: %s", dir)

	mainSeeder := seeders.NewMainSeeder(storage)

	switch *seedType {
	case "all":
		log.Println("Running complete seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed: %v", err)
		}
	case "users":
		if err := mainSeeder.SeedUsersOnly(); err != nil {
			log.Fatalf("Failed to seed users: %v", err)
		}
	case "courses":
		if err := mainSeeder.SeedCoursesOnly(); err != nil {
			log.Fatalf("Failed to seed courses: %v", err)
		}
	case "progress":
		if err := mainSeeder.SeedProgressOnly(); err != nil {
			log.Fatalf("Failed to seed progress: %v", err)
		}
	case "achievements":
		if err := mainSeeder.SeedAchievementsOnly(); err != nil {
			log.Fatalf("Failed to seed achievements: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'users', 'courses', 'progress', or 'achievements'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Demo Data Seeding Tool for the MAPA learning platform core

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, users, courses, progress, achievements
  -data string
        Data directory (overrides DATA_DIR environment variable)
  -help
        Show this help message

Examples:
  # Seed everything
  go run seed/main.go

  # Seed only the demo accounts
  go run seed/main.go -type=users

  # Seed into a custom data directory
  go run seed/main.go -data=./demo-data

Environment Variables:
  DATA_DIR - Default data directory (default: ./data)
`)
}
