package seeders

import (
	"log"
	"time"

	"github.com/mapalk/mapa_core/model"
	"github.com/mapalk/mapa_core/services"
)

// UserSeeder loads the demo accounts. Ids are fixed so the course, progress
// and achievement fixtures can reference them.
type UserSeeder struct {
	storage *services.StorageService
}

func NewUserSeeder(storage *services.StorageService) *UserSeeder {
	return &UserSeeder{storage: storage}
}

func (s *UserSeeder) SeedUsers() error {
	users := s.storage.Users()
	existing := map[string]bool{}
	for _, u := range users {
		existing[u.ID] = true
	}

	added := 0
	for _, user := range demoUsers() {
		if existing[user.ID] {
			log.Printf("User %s already exists, skipping", user.Name)
			continue
		}
		users = append(users, user)
		added++
		log.Printf("Created user: %s (%s)", user.Name, user.Role)
	}

	if added > 0 {
		if err := s.storage.PutUsers(users); err != nil {
			return err
		}
	}

	log.Println("User seeding completed successfully")
	return nil
}

func demoUsers() []model.User {
	createdAt := func(day int) time.Time {
		return time.Date(2024, time.January, day, 10, 0, 0, 0, time.UTC)
	}

	return []model.User{
		// Students
		{
			ID: "user_amal", Name: "Amal Perera", Email: "amal@student.com",
			Password: "student123", Role: model.RoleStudent, Phone: "+94771234567",
			Grade: "grade10-11", AssignedCourses: []string{}, CreatedAt: createdAt(15),
		},
		{
			ID: "user_saman", Name: "Saman Silva", Email: "saman@student.com",
			Password: "student123", Role: model.RoleStudent, Phone: "+94771234568",
			Grade: "grade12-13", AssignedCourses: []string{}, CreatedAt: createdAt(16),
		},
		{
			ID: "user_nimal", Name: "Nimal Fernando", Email: "nimal@student.com",
			Password: "student123", Role: model.RoleStudent, Phone: "+94771234569",
			Grade: "adult", AssignedCourses: []string{}, CreatedAt: createdAt(17),
		},
		{
			ID: "user_kamala", Name: "Kamala Jayasinghe", Email: "kamala@student.com",
			Password: "student123", Role: model.RoleStudent, Phone: "+94771234570",
			Grade: "grade6-9", AssignedCourses: []string{}, CreatedAt: createdAt(18),
		},
		{
			ID: "user_ruwan", Name: "Ruwan Bandara", Email: "ruwan@student.com",
			Password: "student123", Role: model.RoleStudent, Phone: "+94771234571",
			Grade: "grade10-11", AssignedCourses: []string{}, CreatedAt: createdAt(19),
		},

		// Teachers
		{
			ID: "user_priyanka", Name: "Mrs. Priyanka Wijesinghe", Email: "priyanka@teacher.com",
			Password: "teacher123", Role: model.RoleTeacher, Phone: "+94771234572",
			Subject: "english", Experience: 8,
			Qualifications: "B.A. in English Literature, TESOL Certificate", CreatedAt: createdAt(10),
		},
		{
			ID: "user_sunil", Name: "Mr. Sunil Rajapaksa", Email: "sunil@teacher.com",
			Password: "teacher123", Role: model.RoleTeacher, Phone: "+94771234573",
			Subject: "tamil", Experience: 12,
			Qualifications: "M.A. in Tamil Literature, Teaching Diploma", CreatedAt: createdAt(11),
		},
		{
			ID: "user_dilani", Name: "Ms. Dilani Kumari", Email: "dilani@teacher.com",
			Password: "teacher123", Role: model.RoleTeacher, Phone: "+94771234574",
			Subject: "both", Experience: 6,
			Qualifications: "B.Ed. in Languages, CELTA Certificate", CreatedAt: createdAt(12),
		},

		// Course admins
		{
			ID: "user_mahesh", Name: "Dr. Mahesh Gunasekara", Email: "mahesh@courseadmin.com",
			Password: "admin123", Role: model.RoleCourseAdmin, Phone: "+94771234575",
			Department: "English Department", CreatedAt: createdAt(5),
		},
		{
			ID: "user_chandrika", Name: "Prof. Chandrika Mendis", Email: "chandrika@courseadmin.com",
			Password: "admin123", Role: model.RoleCourseAdmin, Phone: "+94771234576",
			Department: "Tamil Department", CreatedAt: createdAt(6),
		},

		// Site admin
		{
			ID: "user_kanishka", Name: "Kanishka Jayathilaka", Email: "kanishka@siteadmin.com",
			Password: "admin123", Role: model.RoleSiteAdmin, Phone: "+94718111600",
			Department: "IT Administration", CreatedAt: createdAt(1),
		},
	}
}
