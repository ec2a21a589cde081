package seeders

import (
	"log"
	"time"

	"github.com/mapalk/mapa_core/model"
	"github.com/mapalk/mapa_core/services"
	"github.com/mapalk/mapa_core/shared"
)

// AchievementSeeder loads demo badges. Dedup keys are set so re-running the
// derived engine over the seeded progress never duplicates an award.
type AchievementSeeder struct {
	storage *services.StorageService
}

func NewAchievementSeeder(storage *services.StorageService) *AchievementSeeder {
	return &AchievementSeeder{storage: storage}
}

func (s *AchievementSeeder) SeedAchievements() error {
	achievements := s.storage.Achievements()
	existing := map[string]bool{}
	for _, a := range achievements {
		existing[a.StudentID+"|"+a.DedupKey] = true
	}

	added := 0
	for _, achievement := range demoAchievements() {
		if existing[achievement.StudentID+"|"+achievement.DedupKey] {
			log.Printf("Achievement %s for %s already exists, skipping", achievement.Title, achievement.StudentID)
			continue
		}
		achievements = append(achievements, achievement)
		added++
		log.Printf("Created achievement: %s for %s", achievement.Title, achievement.StudentID)
	}

	if added > 0 {
		if err := s.storage.PutAchievements(achievements); err != nil {
			return err
		}
	}

	log.Println("Achievement seeding completed successfully")
	return nil
}

func demoAchievements() []model.Achievement {
	at := func(day, hour, min int) time.Time {
		return time.Date(2024, time.January, day, hour, min, 0, 0, time.UTC)
	}

	return []model.Achievement{
		{
			ID: "ach_amal_first", StudentID: "user_amal",
			DedupKey:    shared.FirstLessonKey,
			Title:       "First Lesson Complete!",
			Description: "Completed your first lesson in Total English Solution",
			Icon:        "🎯", CourseID: "course_total_english", EarnedAt: at(20, 10, 45),
		},
		{
			ID: "ach_saman_first", StudentID: "user_saman",
			DedupKey:    shared.FirstLessonKey,
			Title:       "First Lesson Complete!",
			Description: "Completed your first lesson in Total English Solution",
			Icon:        "🔤", CourseID: "course_total_english", EarnedAt: at(20, 11, 30),
		},
		{
			ID: "ach_kamala_first", StudentID: "user_kamala",
			DedupKey:    shared.FirstLessonKey,
			Title:       "First Lesson Complete!",
			Description: "Completed your first lesson in English ABCD",
			Icon:        "⭐", CourseID: "course_english_abcd", EarnedAt: at(20, 14, 30),
		},
		{
			ID: "ach_kamala_tamil", StudentID: "user_kamala",
			DedupKey:    "lesson-master:course_tamil_basics-1",
			Title:       "Tamil Script Master",
			Description: "Learned Tamil Script Basics",
			Icon:        "🎨", CourseID: "course_tamil_basics", EarnedAt: at(22, 14, 50),
		},
	}
}
