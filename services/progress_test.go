package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapalk/mapa_core/dto"
)

func TestRecordUpsertsSingleRecordPerKey(t *testing.T) {
	ts := newTestStack(t)

	_, err := ts.progress.Record(dto.ProgressUpdateRequest{
		StudentID: "s1", CourseID: "c1", LessonID: "l1", TimeSpent: 300,
	})
	require.NoError(t, err)

	_, err = ts.progress.Record(dto.ProgressUpdateRequest{
		StudentID: "s1", CourseID: "c1", LessonID: "l1", TimeSpent: 200,
	})
	require.NoError(t, err)

	records := ts.progress.Query("s1", "c1")
	require.Len(t, records, 1, "one record per (student, course, lesson)")
	assert.Equal(t, 500, records[0].TimeSpent, "time spent accumulates across sittings")
}

func TestRecordCompletedIsSticky(t *testing.T) {
	ts := newTestStack(t)

	_, err := ts.progress.Record(dto.ProgressUpdateRequest{
		StudentID: "s1", CourseID: "c1", LessonID: "l1", Completed: true,
	})
	require.NoError(t, err)

	record, err := ts.progress.Record(dto.ProgressUpdateRequest{
		StudentID: "s1", CourseID: "c1", LessonID: "l1", Completed: false, TimeSpent: 60,
	})
	require.NoError(t, err)
	assert.True(t, record.Completed, "a completed lesson cannot revert to incomplete")
	assert.True(t, ts.progress.IsLessonCompleted("s1", "l1"))
}

func TestRecordStampsLastAccessed(t *testing.T) {
	ts := newTestStack(t)

	before := time.Now()
	record, err := ts.progress.Record(dto.ProgressUpdateRequest{
		StudentID: "s1", CourseID: "c1", LessonID: "l1",
	})
	require.NoError(t, err)
	assert.False(t, record.LastAccessed.Before(before))
}

func TestRecordKeepsScore(t *testing.T) {
	ts := newTestStack(t)

	score := 85
	_, err := ts.progress.Record(dto.ProgressUpdateRequest{
		StudentID: "s1", CourseID: "c1", LessonID: "l1", Score: &score,
	})
	require.NoError(t, err)

	record, err := ts.progress.Record(dto.ProgressUpdateRequest{
		StudentID: "s1", CourseID: "c1", LessonID: "l1", TimeSpent: 30,
	})
	require.NoError(t, err)
	require.NotNil(t, record.Score)
	assert.Equal(t, 85, *record.Score, "a sitting without a score keeps the stored one")
}

func TestQueryScopesToStudentAndCourse(t *testing.T) {
	ts := newTestStack(t)

	for _, req := range []dto.ProgressUpdateRequest{
		{StudentID: "s1", CourseID: "c1", LessonID: "l1", Completed: true},
		{StudentID: "s1", CourseID: "c2", LessonID: "l2"},
		{StudentID: "s2", CourseID: "c1", LessonID: "l1"},
	} {
		_, err := ts.progress.Record(req)
		require.NoError(t, err)
	}

	assert.Len(t, ts.progress.Query("s1", "c1"), 1)
	assert.Len(t, ts.progress.Query("s1", "c2"), 1)
	assert.Empty(t, ts.progress.Query("s2", "c2"))
	assert.Equal(t, []string{"l1"}, ts.progress.CompletedLessons("s1", "c1"))
	assert.True(t, ts.progress.HasCompletedAnyLesson("s1"))
	assert.False(t, ts.progress.HasCompletedAnyLesson("s2"))
}

func TestOpenAndCloseLesson(t *testing.T) {
	ts := newTestStack(t)

	ts.progress.OpenLesson("s1", "c1", "l1")
	elapsed, err := ts.progress.CloseLesson("s1", "c1", "l1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 0)

	records := ts.progress.Query("s1", "c1")
	require.Len(t, records, 1)
	assert.False(t, records[0].Completed, "closing a sitting does not complete the lesson")

	_, err = ts.progress.CloseLesson("s1", "c1", "l1")
	assert.Error(t, err, "a sitting can only be closed once")
}

func TestShutdownCancelsOpenTimers(t *testing.T) {
	ts := newTestStack(t)

	ts.progress.OpenLesson("s1", "c1", "l1")
	ts.progress.OpenLesson("s1", "c1", "l2")
	ts.progress.Shutdown()

	_, err := ts.progress.CloseLesson("s1", "c1", "l1")
	assert.Error(t, err)
}
