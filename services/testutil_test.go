package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapalk/mapa_core/dto"
	"github.com/mapalk/mapa_core/model"
)

type testStack struct {
	storage     *StorageService
	identity    *IdentityService
	content     *ContentService
	progress    *ProgressService
	achievement *AchievementService
	derived     *DerivedService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.Start())

	content := &ContentService{storageSvc: storage}
	progress := &ProgressService{storageSvc: storage, timers: map[string]*lessonTimer{}}
	achievement := &AchievementService{storageSvc: storage}

	return &testStack{
		storage:     storage,
		identity:    &IdentityService{storageSvc: storage},
		content:     content,
		progress:    progress,
		achievement: achievement,
		derived: &DerivedService{
			contentSvc:     content,
			progressSvc:    progress,
			achievementSvc: achievement,
		},
	}
}

func (ts *testStack) registerStudent(t *testing.T, name, email string) string {
	t.Helper()
	id, err := ts.identity.Register(dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "student123",
		Role:     string(model.RoleStudent),
		Grade:    "grade10-11",
	})
	require.NoError(t, err)
	return id
}

func (ts *testStack) registerTeacher(t *testing.T, name, email string) string {
	t.Helper()
	id, err := ts.identity.Register(dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "teacher123",
		Role:     string(model.RoleTeacher),
		Subject:  "english",
	})
	require.NoError(t, err)
	return id
}

// createTwoLessonCourse builds the standard fixture: lesson 1 unlocked,
// lesson 2 locked.
func (ts *testStack) createTwoLessonCourse(t *testing.T) (string, []string) {
	t.Helper()
	courseID, err := ts.content.CreateCourse(dto.CreateCourseRequest{
		Title:    "Basic English",
		Category: "english",
		Level:    "beginner",
		Duration: "10 months",
		IsActive: true,
		Lessons: []dto.LessonRequest{
			{Title: "Greetings", Content: "Hello and goodbye", Duration: "35 minutes"},
			{Title: "Numbers", Content: "One to ten", Duration: "30 minutes"},
		},
	})
	require.NoError(t, err)

	course, err := ts.content.GetCourse(courseID)
	require.NoError(t, err)
	return courseID, []string{course.Lessons[0].ID, course.Lessons[1].ID}
}
