package seeders

import (
	"log"
	"time"

	"github.com/mapalk/mapa_core/model"
	"github.com/mapalk/mapa_core/services"
)

// ProgressSeeder loads demo completion records for the seeded students.
type ProgressSeeder struct {
	storage *services.StorageService
}

func NewProgressSeeder(storage *services.StorageService) *ProgressSeeder {
	return &ProgressSeeder{storage: storage}
}

func (s *ProgressSeeder) SeedProgress() error {
	records := s.storage.Progress()
	existing := map[string]bool{}
	for _, r := range records {
		existing[r.StudentID+"|"+r.CourseID+"|"+r.LessonID] = true
	}

	added := 0
	for _, record := range demoProgress() {
		if existing[record.StudentID+"|"+record.CourseID+"|"+record.LessonID] {
			log.Printf("Progress for %s on %s already exists, skipping", record.StudentID, record.LessonID)
			continue
		}
		records = append(records, record)
		added++
		log.Printf("Created progress: %s / %s (completed=%v)", record.StudentID, record.LessonID, record.Completed)
	}

	if added > 0 {
		if err := s.storage.PutProgress(records); err != nil {
			return err
		}
	}

	log.Println("Progress seeding completed successfully")
	return nil
}

func demoProgress() []model.ProgressRecord {
	at := func(day, hour int) time.Time {
		return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
	}

	return []model.ProgressRecord{
		{StudentID: "user_amal", CourseID: "course_total_english", LessonID: "course_total_english-1", Completed: true, TimeSpent: 1800, LastAccessed: at(20, 10)},
		{StudentID: "user_saman", CourseID: "course_total_english", LessonID: "course_total_english-1", Completed: true, TimeSpent: 2400, LastAccessed: at(20, 11)},
		{StudentID: "user_kamala", CourseID: "course_english_abcd", LessonID: "course_english_abcd-1", Completed: true, TimeSpent: 1800, LastAccessed: at(20, 14)},
		{StudentID: "user_kamala", CourseID: "course_tamil_basics", LessonID: "course_tamil_basics-1", Completed: true, TimeSpent: 3000, LastAccessed: at(22, 14)},
		{StudentID: "user_ruwan", CourseID: "course_total_english", LessonID: "course_total_english-1", Completed: false, TimeSpent: 1200, LastAccessed: at(21, 16)},
	}
}
