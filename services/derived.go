package services

import (
	"math"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/mapalk/mapa_core/dto"
	"github.com/mapalk/mapa_core/model"
	"github.com/mapalk/mapa_core/shared"
)

// DerivedService computes state derived from the content, progress and
// achievement stores: completion percentages, lesson accessibility and the
// side effects of completing a lesson. It holds no state of its own.
type DerivedService struct {
	context.DefaultService

	contentSvc     *ContentService
	progressSvc    *ProgressService
	achievementSvc *AchievementService
}

const DERIVED_SVC = "derived_svc"

func (svc DerivedService) Id() string {
	return DERIVED_SVC
}

func (svc *DerivedService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *DerivedService) Start() error {
	if svc.contentSvc == nil {
		svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	}
	if svc.progressSvc == nil {
		svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	}
	if svc.achievementSvc == nil {
		svc.achievementSvc = svc.Service(ACHIEVEMENT_SVC).(*AchievementService)
	}
	return nil
}

// CompletionPercent is round(100 * completed lessons / total lessons) for the
// course, always in [0,100]. A course with no lessons is 0% complete.
func (svc *DerivedService) CompletionPercent(studentID, courseID string) (int, error) {
	course, err := svc.contentSvc.GetCourse(courseID)
	if err != nil {
		return 0, err
	}
	if len(course.Lessons) == 0 {
		return 0, nil
	}

	completed := svc.completedInCourse(studentID, course)
	return int(math.Round(100 * float64(completed) / float64(len(course.Lessons)))), nil
}

// completedInCourse counts completed records that still point at a lesson in
// the course, so records orphaned by lesson edits don't inflate the percent.
func (svc *DerivedService) completedInCourse(studentID string, course *model.Course) int {
	completed := 0
	for _, lessonID := range svc.progressSvc.CompletedLessons(studentID, course.ID) {
		if course.Lesson(lessonID) != nil {
			completed++
		}
	}
	return completed
}

// IsLessonAccessible reports whether the student can open the lesson: true
// when the lesson is unlocked, or when the student already completed it.
// A completed lesson stays visible even if its flag were locked again.
func (svc *DerivedService) IsLessonAccessible(studentID, courseID, lessonID string) (bool, error) {
	course, err := svc.contentSvc.GetCourse(courseID)
	if err != nil {
		return false, err
	}
	lesson := course.Lesson(lessonID)
	if lesson == nil {
		return false, shared.ErrNotFound
	}
	return !lesson.IsLocked || svc.progressSvc.IsLessonCompleted(studentID, lessonID), nil
}

// CompletionResult reports what changed when a lesson was completed.
type CompletionResult struct {
	Record  *model.ProgressRecord
	Percent int
	Awarded []model.Achievement
}

// CompleteLesson marks the lesson completed and applies the follow-on
// effects: a "first lesson" achievement if this is the student's first
// completed lesson anywhere, and a "course completed" achievement when the
// whole course is now done. It does NOT unlock the next lesson; unlocking
// stays an explicit teacher action.
func (svc *DerivedService) CompleteLesson(studentID, courseID, lessonID string, timeSpent int) (*CompletionResult, error) {
	course, err := svc.contentSvc.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if course.Lesson(lessonID) == nil {
		return nil, shared.ErrNotFound
	}

	firstEver := !svc.progressSvc.HasCompletedAnyLesson(studentID)

	record, err := svc.progressSvc.Record(dto.ProgressUpdateRequest{
		StudentID: studentID,
		CourseID:  courseID,
		LessonID:  lessonID,
		Completed: true,
		TimeSpent: timeSpent,
	})
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{Record: record, Awarded: []model.Achievement{}}

	if firstEver {
		a, created, err := svc.achievementSvc.Award(studentID,
			shared.FirstLessonKey,
			"First Lesson Complete!",
			"Completed your first lesson in "+course.Title,
			"🎯", courseID)
		if err != nil {
			return nil, err
		}
		if created {
			result.Awarded = append(result.Awarded, *a)
		}
	}

	if svc.completedInCourse(studentID, course) == len(course.Lessons) {
		a, created, err := svc.achievementSvc.Award(studentID,
			shared.CourseCompletedKey(courseID),
			"Course Completed!",
			"Completed "+course.Title,
			"🎓", courseID)
		if err != nil {
			return nil, err
		}
		if created {
			result.Awarded = append(result.Awarded, *a)
		}
	}

	result.Percent, err = svc.CompletionPercent(studentID, courseID)
	if err != nil {
		return nil, err
	}

	recordLessonCompleted()
	log.WithField("student_id", studentID).WithField("lesson_id", lessonID).
		WithField("percent", result.Percent).Info("Lesson completed")
	return result, nil
}
