package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapalk/mapa_core/dto"
	"github.com/mapalk/mapa_core/shared"
)

func TestCreateCourseLessonDefaults(t *testing.T) {
	ts := newTestStack(t)
	courseID, _ := ts.createTwoLessonCourse(t)

	course, err := ts.content.GetCourse(courseID)
	require.NoError(t, err)
	require.Len(t, course.Lessons, 2)

	assert.Equal(t, 1, course.Lessons[0].Order)
	assert.Equal(t, 2, course.Lessons[1].Order)
	assert.False(t, course.Lessons[0].IsLocked, "first lesson starts unlocked")
	assert.True(t, course.Lessons[1].IsLocked, "later lessons start locked")
	assert.NotEmpty(t, course.Lessons[0].ID)
	assert.False(t, course.CreatedAt.IsZero())
}

func TestGetCourseNotFound(t *testing.T) {
	ts := newTestStack(t)
	_, err := ts.content.GetCourse("missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestEnrollIdempotent(t *testing.T) {
	ts := newTestStack(t)
	studentID := ts.registerStudent(t, "Amal", "amal@student.com")
	courseID, _ := ts.createTwoLessonCourse(t)

	require.NoError(t, ts.content.Enroll(studentID, courseID))
	require.NoError(t, ts.content.Enroll(studentID, courseID))

	course, err := ts.content.GetCourse(courseID)
	require.NoError(t, err)

	occurrences := 0
	for _, id := range course.StudentIDs {
		if id == studentID {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "double enrollment must not duplicate the membership")
}

func TestEnrollChecksUser(t *testing.T) {
	ts := newTestStack(t)
	teacherID := ts.registerTeacher(t, "Priyanka", "priyanka@teacher.com")
	courseID, _ := ts.createTwoLessonCourse(t)

	assert.Error(t, ts.content.Enroll(teacherID, courseID), "only students can be enrolled")
	assert.ErrorIs(t, ts.content.Enroll("missing", courseID), shared.ErrNotFound)

	studentID := ts.registerStudent(t, "Amal", "amal@student.com")
	assert.ErrorIs(t, ts.content.Enroll(studentID, "missing"), shared.ErrNotFound)
}

func TestAssignAndUnassignTeacher(t *testing.T) {
	ts := newTestStack(t)
	teacherID := ts.registerTeacher(t, "Priyanka", "priyanka@teacher.com")
	courseID, _ := ts.createTwoLessonCourse(t)

	require.NoError(t, ts.content.AssignTeacher(courseID, teacherID))
	require.NoError(t, ts.content.AssignTeacher(courseID, teacherID))

	course, err := ts.content.GetCourse(courseID)
	require.NoError(t, err)
	assert.Equal(t, []string{teacherID}, course.TeacherIDs)

	require.NoError(t, ts.content.UnassignTeacher(courseID, teacherID))
	require.NoError(t, ts.content.UnassignTeacher(courseID, teacherID))

	course, err = ts.content.GetCourse(courseID)
	require.NoError(t, err)
	assert.Empty(t, course.TeacherIDs)
}

func TestUnlockLesson(t *testing.T) {
	ts := newTestStack(t)
	courseID, lessons := ts.createTwoLessonCourse(t)

	require.NoError(t, ts.content.UnlockLesson(courseID, lessons[1]))

	course, err := ts.content.GetCourse(courseID)
	require.NoError(t, err)
	assert.False(t, course.Lesson(lessons[1]).IsLocked)

	assert.ErrorIs(t, ts.content.UnlockLesson(courseID, "missing"), shared.ErrNotFound)
	assert.ErrorIs(t, ts.content.UnlockLesson("missing", lessons[1]), shared.ErrNotFound)
}

func TestUpdateCourse(t *testing.T) {
	ts := newTestStack(t)
	courseID, _ := ts.createTwoLessonCourse(t)

	title := "Basic English (Revised)"
	inactive := false
	require.NoError(t, ts.content.UpdateCourse(courseID, dto.CourseUpdateRequest{
		Title:    &title,
		IsActive: &inactive,
	}))

	course, err := ts.content.GetCourse(courseID)
	require.NoError(t, err)
	assert.Equal(t, title, course.Title)
	assert.False(t, course.IsActive)
	assert.Equal(t, "english", course.Category, "untouched fields must survive")

	assert.ErrorIs(t, ts.content.UpdateCourse("missing", dto.CourseUpdateRequest{Title: &title}), shared.ErrNotFound)
}

func TestAddLesson(t *testing.T) {
	ts := newTestStack(t)
	courseID, _ := ts.createTwoLessonCourse(t)

	lessonID, err := ts.content.AddLesson(courseID, dto.LessonRequest{
		Title:    "Colors",
		Content:  "Red, blue, green",
		Duration: "25 minutes",
	})
	require.NoError(t, err)

	course, err := ts.content.GetCourse(courseID)
	require.NoError(t, err)
	require.Len(t, course.Lessons, 3)

	added := course.Lesson(lessonID)
	require.NotNil(t, added)
	assert.Equal(t, 3, added.Order)
	assert.True(t, added.IsLocked, "appended lessons start locked")
}

func TestDeleteCoursePurgesProgressKeepsAchievements(t *testing.T) {
	ts := newTestStack(t)
	studentID := ts.registerStudent(t, "Amal", "amal@student.com")
	courseID, lessons := ts.createTwoLessonCourse(t)
	otherID, otherLessons := ts.createTwoLessonCourse(t)

	_, err := ts.derived.CompleteLesson(studentID, courseID, lessons[0], 60)
	require.NoError(t, err)
	_, err = ts.derived.CompleteLesson(studentID, otherID, otherLessons[0], 60)
	require.NoError(t, err)

	require.NoError(t, ts.content.DeleteCourse(courseID))

	_, err = ts.content.GetCourse(courseID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.Empty(t, ts.progress.Query(studentID, courseID), "deleted course's progress is purged")
	assert.NotEmpty(t, ts.progress.Query(studentID, otherID), "other courses keep their progress")
	assert.NotEmpty(t, ts.achievement.ByStudent(studentID), "earned achievements survive course deletion")

	assert.ErrorIs(t, ts.content.DeleteCourse(courseID), shared.ErrNotFound)
}

func TestStudentAndTeacherCourses(t *testing.T) {
	ts := newTestStack(t)
	studentID := ts.registerStudent(t, "Amal", "amal@student.com")
	teacherID := ts.registerTeacher(t, "Priyanka", "priyanka@teacher.com")
	courseID, _ := ts.createTwoLessonCourse(t)
	ts.createTwoLessonCourse(t)

	require.NoError(t, ts.content.Enroll(studentID, courseID))
	require.NoError(t, ts.content.AssignTeacher(courseID, teacherID))

	studentCourses := ts.content.StudentCourses(studentID)
	require.Len(t, studentCourses, 1)
	assert.Equal(t, courseID, studentCourses[0].ID)

	teacherCourses := ts.content.TeacherCourses(teacherID)
	require.Len(t, teacherCourses, 1)
	assert.Equal(t, courseID, teacherCourses[0].ID)
}
