package model

import "time"

// ProgressRecord tracks one student's state for one lesson. At most one
// record exists per (student, course, lesson); writes upsert in place.
type ProgressRecord struct {
	StudentID    string    `json:"student_id"`
	CourseID     string    `json:"course_id"`
	LessonID     string    `json:"lesson_id"`
	Completed    bool      `json:"completed"`
	Score        *int      `json:"score,omitempty"`
	TimeSpent    int       `json:"time_spent"` // seconds, accumulated across sittings
	LastAccessed time.Time `json:"last_accessed"`
}

func (p *ProgressRecord) Matches(studentID, courseID, lessonID string) bool {
	return p.StudentID == studentID && p.CourseID == courseID && p.LessonID == lessonID
}
