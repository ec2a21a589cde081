package dto

type ProgressUpdateRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
	LessonID  string `json:"lesson_id" validate:"required"`
	Completed bool   `json:"completed"`
	Score     *int   `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	TimeSpent int    `json:"time_spent" validate:"gte=0"` // seconds for this sitting
}
