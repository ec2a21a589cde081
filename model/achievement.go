package model

import "time"

// Achievement is an earned badge. DedupKey identifies the triggering event;
// the achievement store guarantees at most one award per (student, key).
type Achievement struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	DedupKey    string    `json:"dedup_key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CourseID    string    `json:"course_id,omitempty"`
	EarnedAt    time.Time `json:"earned_at"`
}
