package seeders

import (
	"log"

	"github.com/mapalk/mapa_core/services"
)

// MainSeeder coordinates the individual seeders. Order matters: courses
// reference users, progress and achievements reference both.
type MainSeeder struct {
	storage *services.StorageService

	userSeeder        *UserSeeder
	courseSeeder      *CourseSeeder
	progressSeeder    *ProgressSeeder
	achievementSeeder *AchievementSeeder
}

func NewMainSeeder(storage *services.StorageService) *MainSeeder {
	return &MainSeeder{
		storage:           storage,
		userSeeder:        NewUserSeeder(storage),
		courseSeeder:      NewCourseSeeder(storage),
		progressSeeder:    NewProgressSeeder(storage),
		achievementSeeder: NewAchievementSeeder(storage),
	}
}

func (s *MainSeeder) SeedAll() error {
	log.Println("Starting complete seeding...")

	if err := s.userSeeder.SeedUsers(); err != nil {
		return err
	}
	if err := s.courseSeeder.SeedCourses(); err != nil {
		return err
	}
	if err := s.progressSeeder.SeedProgress(); err != nil {
		return err
	}
	if err := s.achievementSeeder.SeedAchievements(); err != nil {
		return err
	}

	log.Println("Complete seeding finished")
	return nil
}

func (s *MainSeeder) SeedUsersOnly() error {
	return s.userSeeder.SeedUsers()
}

func (s *MainSeeder) SeedCoursesOnly() error {
	return s.courseSeeder.SeedCourses()
}

func (s *MainSeeder) SeedProgressOnly() error {
	return s.progressSeeder.SeedProgress()
}

func (s *MainSeeder) SeedAchievementsOnly() error {
	return s.achievementSeeder.SeedAchievements()
}
