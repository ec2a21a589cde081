package dto

type LessonRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	VideoURL    string `json:"video_url"`
	PDFURL      string `json:"pdf_url"`
	Duration    string `json:"duration"`
}

type CreateCourseRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required,oneof=english tamil"`
	Level       string          `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Duration    string          `json:"duration"`
	AdminID     string          `json:"admin_id"`
	TeacherIDs  []string        `json:"teacher_ids"`
	StudentIDs  []string        `json:"student_ids"`
	IsActive    bool            `json:"is_active"`
	PDFURL      string          `json:"pdf_url"`
	ImageURL    string          `json:"image_url"`
	Lessons     []LessonRequest `json:"lessons" validate:"dive"`
}

// CourseUpdateRequest merges scalar fields into an existing course.
// Enrollment and teacher assignment go through their own operations.
type CourseUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,oneof=english tamil"`
	Level       *string `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration    *string `json:"duration,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	PDFURL      *string `json:"pdf_url,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}
