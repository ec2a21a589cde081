package services

import (
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mapalk/mapa_core/dto"
	"github.com/mapalk/mapa_core/model"
	"github.com/mapalk/mapa_core/shared"
)

// ContentService owns courses and their lessons, including the enrollment
// and teacher-assignment membership sets.
type ContentService struct {
	context.DefaultService

	storageSvc *StorageService
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	if svc.storageSvc == nil {
		svc.storageSvc = svc.Service(STORAGE_SVC).(*StorageService)
	}
	return nil
}

// CreateCourse assigns a fresh id and creation timestamp. Lesson orders are
// normalized to a dense 1..n sequence; the first lesson starts unlocked and
// every later lesson starts locked until a teacher explicitly unlocks it.
func (svc *ContentService) CreateCourse(req dto.CreateCourseRequest) (string, error) {
	if err := dto.GetValidator().Struct(req); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	course := model.Course{
		ID:          id.String(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Duration:    req.Duration,
		AdminID:     req.AdminID,
		TeacherIDs:  dedupe(req.TeacherIDs),
		StudentIDs:  dedupe(req.StudentIDs),
		IsActive:    req.IsActive,
		PDFURL:      req.PDFURL,
		ImageURL:    req.ImageURL,
		Lessons:     make([]model.Lesson, 0, len(req.Lessons)),
		CreatedAt:   time.Now(),
	}

	for i, l := range req.Lessons {
		course.Lessons = append(course.Lessons, buildLesson(course.ID, l, i+1))
	}

	courses := svc.storageSvc.Courses()
	if err := svc.storageSvc.PutCourses(append(courses, course)); err != nil {
		return "", err
	}

	recordStoreOp("content", "create_course")
	log.WithField("course_id", course.ID).WithField("lessons", len(course.Lessons)).Info("Course created")
	return course.ID, nil
}

func buildLesson(courseID string, req dto.LessonRequest, order int) model.Lesson {
	id := req.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", courseID, order)
	}
	return model.Lesson{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		VideoURL:    req.VideoURL,
		PDFURL:      req.PDFURL,
		Order:       order,
		IsLocked:    order > 1,
		Duration:    req.Duration,
	}
}

func (svc *ContentService) GetCourse(courseID string) (*model.Course, error) {
	for _, c := range svc.storageSvc.Courses() {
		if c.ID == courseID {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("course %s: %w", courseID, shared.ErrNotFound)
}

func (svc *ContentService) Courses() []model.Course {
	return svc.storageSvc.Courses()
}

func (svc *ContentService) UpdateCourse(courseID string, req dto.CourseUpdateRequest) error {
	if err := dto.GetValidator().Struct(req); err != nil {
		return err
	}

	return svc.mutateCourse(courseID, "update_course", func(c *model.Course) error {
		if req.Title != nil {
			c.Title = *req.Title
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.Category != nil {
			c.Category = *req.Category
		}
		if req.Level != nil {
			c.Level = *req.Level
		}
		if req.Duration != nil {
			c.Duration = *req.Duration
		}
		if req.IsActive != nil {
			c.IsActive = *req.IsActive
		}
		if req.PDFURL != nil {
			c.PDFURL = *req.PDFURL
		}
		if req.ImageURL != nil {
			c.ImageURL = *req.ImageURL
		}
		return nil
	})
}

// AddLesson appends a lesson at the next order position. It starts locked
// unless it is the course's first lesson.
func (svc *ContentService) AddLesson(courseID string, req dto.LessonRequest) (string, error) {
	if err := dto.GetValidator().Struct(req); err != nil {
		return "", err
	}

	var lessonID string
	err := svc.mutateCourse(courseID, "add_lesson", func(c *model.Course) error {
		lesson := buildLesson(c.ID, req, len(c.Lessons)+1)
		c.Lessons = append(c.Lessons, lesson)
		lessonID = lesson.ID
		return nil
	})
	return lessonID, err
}

// DeleteCourse removes the course and purges its progress records; earned
// achievements stay as a historical record.
func (svc *ContentService) DeleteCourse(courseID string) error {
	courses := svc.storageSvc.Courses()
	kept := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.ID != courseID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(courses) {
		return fmt.Errorf("course %s: %w", courseID, shared.ErrNotFound)
	}
	if err := svc.storageSvc.PutCourses(kept); err != nil {
		return err
	}

	records := svc.storageSvc.Progress()
	remaining := make([]model.ProgressRecord, 0, len(records))
	for _, r := range records {
		if r.CourseID != courseID {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) != len(records) {
		if err := svc.storageSvc.PutProgress(remaining); err != nil {
			return err
		}
		log.WithField("course_id", courseID).
			WithField("purged", len(records)-len(remaining)).
			Info("Purged progress for deleted course")
	}

	recordStoreOp("content", "delete_course")
	return nil
}

// Enroll adds the student to the course's enrollment set. Idempotent:
// enrolling an already-enrolled student is a no-op. The id must belong to an
// existing user with the student role.
func (svc *ContentService) Enroll(studentID, courseID string) error {
	if err := svc.requireRole(studentID, model.RoleStudent); err != nil {
		return err
	}

	return svc.mutateCourse(courseID, "enroll", func(c *model.Course) error {
		if c.HasStudent(studentID) {
			log.WithField("student_id", studentID).WithField("course_id", courseID).
				Debug("Student already enrolled, skipping")
			return nil
		}
		c.StudentIDs = append(c.StudentIDs, studentID)
		return nil
	})
}

// AssignTeacher adds the teacher to the course's teacher set, idempotently.
func (svc *ContentService) AssignTeacher(courseID, teacherID string) error {
	if err := svc.requireRole(teacherID, model.RoleTeacher); err != nil {
		return err
	}

	return svc.mutateCourse(courseID, "assign_teacher", func(c *model.Course) error {
		if c.HasTeacher(teacherID) {
			return nil
		}
		c.TeacherIDs = append(c.TeacherIDs, teacherID)
		return nil
	})
}

func (svc *ContentService) UnassignTeacher(courseID, teacherID string) error {
	return svc.mutateCourse(courseID, "unassign_teacher", func(c *model.Course) error {
		kept := make([]string, 0, len(c.TeacherIDs))
		for _, id := range c.TeacherIDs {
			if id != teacherID {
				kept = append(kept, id)
			}
		}
		c.TeacherIDs = kept
		return nil
	})
}

// UnlockLesson clears the lesson's gating flag unconditionally. Whether the
// requesting user may unlock is the caller's decision.
func (svc *ContentService) UnlockLesson(courseID, lessonID string) error {
	return svc.mutateCourse(courseID, "unlock_lesson", func(c *model.Course) error {
		lesson := c.Lesson(lessonID)
		if lesson == nil {
			return fmt.Errorf("lesson %s: %w", lessonID, shared.ErrNotFound)
		}
		lesson.IsLocked = false
		log.WithField("course_id", courseID).WithField("lesson_id", lessonID).Info("Lesson unlocked")
		return nil
	})
}

// StudentCourses lists the courses whose enrollment set contains the student.
func (svc *ContentService) StudentCourses(studentID string) []model.Course {
	matched := make([]model.Course, 0)
	for _, c := range svc.storageSvc.Courses() {
		if c.HasStudent(studentID) {
			matched = append(matched, c)
		}
	}
	return matched
}

// TeacherCourses lists the courses the teacher is assigned to.
func (svc *ContentService) TeacherCourses(teacherID string) []model.Course {
	matched := make([]model.Course, 0)
	for _, c := range svc.storageSvc.Courses() {
		if c.HasTeacher(teacherID) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (svc *ContentService) mutateCourse(courseID, op string, mutate func(*model.Course) error) error {
	courses := svc.storageSvc.Courses()
	for i := range courses {
		if courses[i].ID != courseID {
			continue
		}
		if err := mutate(&courses[i]); err != nil {
			return err
		}
		if err := svc.storageSvc.PutCourses(courses); err != nil {
			return err
		}
		recordStoreOp("content", op)
		return nil
	}
	return fmt.Errorf("course %s: %w", courseID, shared.ErrNotFound)
}

func (svc *ContentService) requireRole(userID string, role model.Role) error {
	for _, u := range svc.storageSvc.Users() {
		if u.ID == userID {
			if u.Role != role {
				return fmt.Errorf("user %s is not a %s", userID, role)
			}
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", userID, shared.ErrNotFound)
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
