package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapalk/mapa_core/model"
)

func TestStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()

	storage := NewStorageService(dir)
	require.NoError(t, storage.Start())

	createdAt := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	score := 85

	users := []model.User{
		{
			ID: "user_amal", Name: "Amal Perera", Email: "amal@student.com",
			Password: "student123", Role: model.RoleStudent, Grade: "grade10-11",
			AssignedCourses: []string{}, CreatedAt: createdAt,
		},
		{
			ID: "user_priyanka", Name: "Mrs. Priyanka", Email: "priyanka@teacher.com",
			Password: "teacher123", Role: model.RoleTeacher, Subject: "english",
			Experience: 8, AssignedCourses: []string{}, CreatedAt: createdAt,
		},
	}
	courses := []model.Course{
		{
			ID: "course_basic", Title: "Basic English", Category: "english",
			Level: "beginner", Duration: "10 months",
			TeacherIDs: []string{"user_priyanka"}, StudentIDs: []string{"user_amal"},
			IsActive: true, CreatedAt: createdAt,
			Lessons: []model.Lesson{
				{ID: "course_basic-1", Title: "Greetings", Order: 1, IsLocked: false, Duration: "35 minutes"},
				{ID: "course_basic-2", Title: "Numbers", Order: 2, IsLocked: true, Duration: "30 minutes"},
			},
		},
	}
	progress := []model.ProgressRecord{
		{
			StudentID: "user_amal", CourseID: "course_basic", LessonID: "course_basic-1",
			Completed: true, Score: &score, TimeSpent: 1800, LastAccessed: createdAt,
		},
	}
	achievements := []model.Achievement{
		{
			ID: "ach_1", StudentID: "user_amal", DedupKey: "first-lesson",
			Title: "First Lesson Complete!", Icon: "🎯", CourseID: "course_basic",
			EarnedAt: createdAt,
		},
	}
	session := &model.Session{User: users[0].Public(), LoginAt: createdAt}

	require.NoError(t, storage.PutUsers(users))
	require.NoError(t, storage.PutCourses(courses))
	require.NoError(t, storage.PutProgress(progress))
	require.NoError(t, storage.PutAchievements(achievements))
	require.NoError(t, storage.PutSession(session))

	// A fresh service over the same directory must reproduce the state
	// exactly: no field loss, no id collisions introduced.
	reloaded := NewStorageService(dir)
	require.NoError(t, reloaded.Start())

	assert.Equal(t, users, reloaded.Users())
	assert.Equal(t, courses, reloaded.Courses())
	assert.Equal(t, progress, reloaded.Progress())
	assert.Equal(t, achievements, reloaded.Achievements())
	assert.Equal(t, session, reloaded.Session())
}

func TestStorageStartsEmpty(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.Start())

	assert.Empty(t, storage.Users())
	assert.Empty(t, storage.Courses())
	assert.Empty(t, storage.Progress())
	assert.Empty(t, storage.Achievements())
	assert.Nil(t, storage.Session())
}

func TestClearSession(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.Start())

	session := &model.Session{
		User:    model.User{ID: "user_amal", Role: model.RoleStudent},
		LoginAt: time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, storage.PutSession(session))
	require.NoError(t, storage.ClearSession())
	assert.Nil(t, storage.Session())

	// Clearing twice is fine, and the cleared session stays gone on reload.
	require.NoError(t, storage.ClearSession())

	reloaded := NewStorageService(dir)
	require.NoError(t, reloaded.Start())
	assert.Nil(t, reloaded.Session())
}

func TestReadersReturnIndependentCopies(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.Start())

	require.NoError(t, storage.PutCourses([]model.Course{
		{ID: "c1", Title: "Original", TeacherIDs: []string{}, StudentIDs: []string{},
			Lessons: []model.Lesson{{ID: "l1", Title: "One", Order: 1}}},
	}))

	first := storage.Courses()
	first[0].Title = "Mutated"
	first[0].Lessons[0].Title = "Mutated"

	second := storage.Courses()
	assert.Equal(t, "Original", second[0].Title)
	assert.Equal(t, "One", second[0].Lessons[0].Title)
}
