package model

import "time"

// Lesson is a single unit of course content. The gating flag is only ever
// cleared by an explicit unlock; completion does not touch it.
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	VideoURL    string `json:"video_url,omitempty"`
	PDFURL      string `json:"pdf_url,omitempty"`
	Order       int    `json:"order"` // 1-based, dense within a course
	IsLocked    bool   `json:"is_locked"`
	Duration    string `json:"duration"`
}

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"` // english, tamil
	Level       string   `json:"level"`    // beginner, intermediate, advanced
	Duration    string   `json:"duration"`
	Lessons     []Lesson `json:"lessons"`
	AdminID     string   `json:"admin_id,omitempty"`
	TeacherIDs  []string `json:"teacher_ids"`
	StudentIDs  []string `json:"student_ids"`
	IsActive    bool     `json:"is_active"`
	PDFURL      string   `json:"pdf_url,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Course) Lesson(lessonID string) *Lesson {
	for i := range c.Lessons {
		if c.Lessons[i].ID == lessonID {
			return &c.Lessons[i]
		}
	}
	return nil
}

func (c *Course) HasStudent(studentID string) bool {
	return contains(c.StudentIDs, studentID)
}

func (c *Course) HasTeacher(teacherID string) bool {
	return contains(c.TeacherIDs, teacherID)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
