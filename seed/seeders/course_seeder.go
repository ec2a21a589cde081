package seeders

import (
	"log"
	"time"

	"github.com/mapalk/mapa_core/model"
	"github.com/mapalk/mapa_core/services"
	"github.com/mapalk/mapa_core/shared"
)

// CourseSeeder loads the demo courses with their lessons and memberships.
type CourseSeeder struct {
	storage *services.StorageService
}

func NewCourseSeeder(storage *services.StorageService) *CourseSeeder {
	return &CourseSeeder{storage: storage}
}

func (s *CourseSeeder) SeedCourses() error {
	courses := s.storage.Courses()
	existing := map[string]bool{}
	for _, c := range courses {
		existing[c.ID] = true
	}

	added := 0
	for _, course := range demoCourses() {
		if existing[course.ID] {
			log.Printf("Course %s already exists, skipping", course.Title)
			continue
		}
		courses = append(courses, course)
		added++
		log.Printf("Created course: %s (%d lessons)", course.Title, len(course.Lessons))
	}

	if added > 0 {
		if err := s.storage.PutCourses(courses); err != nil {
			return err
		}
	}

	log.Println("Course seeding completed successfully")
	return nil
}

func demoCourses() []model.Course {
	createdAt := time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC)

	return []model.Course{
		{
			ID:          "course_total_english",
			Title:       "Total English Solution",
			Description: "Complete English mastery program covering all aspects from basic to advanced levels",
			Category:    shared.CategoryEnglish,
			Level:       shared.LevelBeginner,
			Duration:    "12 months",
			AdminID:     "user_mahesh",
			TeacherIDs:  []string{"user_priyanka", "user_dilani"},
			StudentIDs:  []string{"user_amal", "user_saman", "user_nimal"},
			IsActive:    true,
			PDFURL:      "https://www.mapalk.com/pdfs/total-english-solution.pdf",
			ImageURL:    "https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg",
			CreatedAt:   createdAt,
			Lessons: []model.Lesson{
				{
					ID:          "course_total_english-1",
					Title:       "English Alphabet & Phonics",
					Description: "Master the English alphabet and basic phonetic sounds",
					Content:     "All 26 letters of the English alphabet, their pronunciation, basic phonetic sounds, letter recognition exercises and writing practice. Consistent practice is the key to mastering the alphabet!",
					Order:       1,
					IsLocked:    false,
					Duration:    "45 minutes",
				},
				{
					ID:          "course_total_english-2",
					Title:       "Basic Grammar Foundations",
					Description: "Understanding parts of speech and sentence structure",
					Content:     "Parts of speech (nouns, verbs, adjectives, adverbs), the subject-verb-object pattern, simple sentences and question formation. Practice forming simple sentences using different parts of speech.",
					Order:       2,
					IsLocked:    true,
					Duration:    "60 minutes",
				},
				{
					ID:          "course_total_english-3",
					Title:       "Vocabulary Building",
					Description: "Essential English words for daily communication",
					Content:     "Common daily words for family, colors, numbers and days, with learning techniques: visual association, repetition, context usage and word families. Learn 5 new words every day and use them in sentences!",
					Order:       3,
					IsLocked:    true,
					Duration:    "50 minutes",
				},
			},
		},
		{
			ID:          "course_english_abcd",
			Title:       "English ABCD",
			Description: "Foundation English for young learners focusing on alphabet and basic vocabulary",
			Category:    shared.CategoryEnglish,
			Level:       shared.LevelBeginner,
			Duration:    "6 months",
			AdminID:     "user_mahesh",
			TeacherIDs:  []string{"user_priyanka"},
			StudentIDs:  []string{"user_kamala"},
			IsActive:    true,
			PDFURL:      "https://www.mapalk.com/pdfs/english-abcd.pdf",
			ImageURL:    "https://images.pexels.com/photos/1720186/pexels-photo-1720186.jpeg",
			CreatedAt:   createdAt,
			Lessons: []model.Lesson{
				{
					ID:          "course_english_abcd-1",
					Title:       "Letter Recognition A-M",
					Description: "Learn to recognize and write letters A through M",
					Content:     "The first half of the alphabet with a word for each letter: A for Apple, B for Ball, C for Cat... Trace each letter, say its name and draw the object.",
					Order:       1,
					IsLocked:    false,
					Duration:    "30 minutes",
				},
				{
					ID:          "course_english_abcd-2",
					Title:       "Letter Recognition N-Z",
					Description: "Learn to recognize and write letters N through Z",
					Content:     "The rest of the alphabet, from N for Nest to Z for Zebra, with matching games and the alphabet song. Congratulations, you now know the complete English alphabet!",
					Order:       2,
					IsLocked:    true,
					Duration:    "30 minutes",
				},
			},
		},
		{
			ID:          "course_tamil_basics",
			Title:       "Tamil Language Basics",
			Description: "Introduction to Tamil script, vocabulary and everyday phrases",
			Category:    shared.CategoryTamil,
			Level:       shared.LevelBeginner,
			Duration:    "8 months",
			AdminID:     "user_chandrika",
			TeacherIDs:  []string{"user_sunil"},
			StudentIDs:  []string{"user_kamala"},
			IsActive:    true,
			ImageURL:    "https://images.pexels.com/photos/1370298/pexels-photo-1370298.jpeg",
			CreatedAt:   createdAt,
			Lessons: []model.Lesson{
				{
					ID:          "course_tamil_basics-1",
					Title:       "Tamil Script Basics",
					Description: "Learn the Tamil vowels and their sounds",
					Content:     "The twelve Tamil vowels (uyir ezhuthu), their shapes and pronunciation, with tracing and listening practice.",
					Order:       1,
					IsLocked:    false,
					Duration:    "40 minutes",
				},
				{
					ID:          "course_tamil_basics-2",
					Title:       "Tamil Consonants",
					Description: "Learn the Tamil consonants and combined letters",
					Content:     "The eighteen Tamil consonants (mei ezhuthu) and how vowels and consonants combine into the full alphabet grid.",
					Order:       2,
					IsLocked:    true,
					Duration:    "45 minutes",
				},
			},
		},
	}
}
