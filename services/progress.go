package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/mapalk/mapa_core/dto"
	"github.com/mapalk/mapa_core/model"
)

// ProgressService owns the per-(student, course, lesson) completion records
// and the elapsed-time ticker for open lesson sittings.
type ProgressService struct {
	context.DefaultService

	storageSvc *StorageService

	mu     sync.Mutex
	timers map[string]*lessonTimer
}

const PROGRESS_SVC = "progress_svc"

func (svc *ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	if svc.storageSvc == nil {
		svc.storageSvc = svc.Service(STORAGE_SVC).(*StorageService)
	}
	svc.timers = map[string]*lessonTimer{}
	return nil
}

func (svc *ProgressService) Shutdown() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	for key, t := range svc.timers {
		t.stop()
		delete(svc.timers, key)
	}
}

// Record upserts the record for the exact (student, course, lesson) key and
// stamps lastAccessed. TimeSpent accumulates across sittings rather than
// holding only the latest one. Completed is sticky: once true it cannot
// revert.
func (svc *ProgressService) Record(req dto.ProgressUpdateRequest) (*model.ProgressRecord, error) {
	if err := dto.GetValidator().Struct(req); err != nil {
		return nil, err
	}

	record := model.ProgressRecord{
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		LessonID:     req.LessonID,
		Completed:    req.Completed,
		Score:        req.Score,
		TimeSpent:    req.TimeSpent,
		LastAccessed: time.Now(),
	}

	records := svc.storageSvc.Progress()
	kept := make([]model.ProgressRecord, 0, len(records)+1)
	for _, r := range records {
		if r.Matches(req.StudentID, req.CourseID, req.LessonID) {
			record.TimeSpent += r.TimeSpent
			record.Completed = record.Completed || r.Completed
			if record.Score == nil {
				record.Score = r.Score
			}
			continue
		}
		kept = append(kept, r)
	}
	kept = append(kept, record)

	if err := svc.storageSvc.PutProgress(kept); err != nil {
		return nil, err
	}

	recordStoreOp("progress", "record")
	return &record, nil
}

// Query returns all records for the (student, course) pair. Order is not
// significant.
func (svc *ProgressService) Query(studentID, courseID string) []model.ProgressRecord {
	matched := make([]model.ProgressRecord, 0)
	for _, r := range svc.storageSvc.Progress() {
		if r.StudentID == studentID && r.CourseID == courseID {
			matched = append(matched, r)
		}
	}
	return matched
}

// IsLessonCompleted reports whether the student has a completed record for
// the lesson.
func (svc *ProgressService) IsLessonCompleted(studentID, lessonID string) bool {
	for _, r := range svc.storageSvc.Progress() {
		if r.StudentID == studentID && r.LessonID == lessonID && r.Completed {
			return true
		}
	}
	return false
}

// CompletedLessons returns the ids of the student's completed lessons in the
// course.
func (svc *ProgressService) CompletedLessons(studentID, courseID string) []string {
	ids := make([]string, 0)
	for _, r := range svc.Query(studentID, courseID) {
		if r.Completed {
			ids = append(ids, r.LessonID)
		}
	}
	return ids
}

// HasCompletedAnyLesson reports whether the student has completed a lesson in
// any course.
func (svc *ProgressService) HasCompletedAnyLesson(studentID string) bool {
	for _, r := range svc.storageSvc.Progress() {
		if r.StudentID == studentID && r.Completed {
			return true
		}
	}
	return false
}

// lessonTimer counts elapsed seconds for one open lesson sitting, ticking
// once per second the way the course viewer's on-screen timer does.
type lessonTimer struct {
	elapsed int
	ticker  *time.Ticker
	done    chan struct{}
	mu      sync.Mutex
}

func newLessonTimer() *lessonTimer {
	t := &lessonTimer{
		ticker: time.NewTicker(1 * time.Second),
		done:   make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *lessonTimer) run() {
	for {
		select {
		case <-t.ticker.C:
			t.mu.Lock()
			t.elapsed++
			t.mu.Unlock()
		case <-t.done:
			return
		}
	}
}

func (t *lessonTimer) stop() int {
	t.ticker.Stop()
	close(t.done)
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// OpenLesson starts the elapsed-time ticker for a lesson sitting. Opening an
// already-open sitting restarts its timer.
func (svc *ProgressService) OpenLesson(studentID, courseID, lessonID string) {
	key := timerKey(studentID, courseID, lessonID)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if prev, ok := svc.timers[key]; ok {
		prev.stop()
	}
	svc.timers[key] = newLessonTimer()
}

// CloseLesson stops the sitting's ticker and records the elapsed seconds
// without changing completion state. Returns the seconds recorded.
func (svc *ProgressService) CloseLesson(studentID, courseID, lessonID string) (int, error) {
	key := timerKey(studentID, courseID, lessonID)

	svc.mu.Lock()
	timer, ok := svc.timers[key]
	delete(svc.timers, key)
	svc.mu.Unlock()

	if !ok {
		return 0, fmt.Errorf("no open sitting for lesson %s", lessonID)
	}

	elapsed := timer.stop()
	_, err := svc.Record(dto.ProgressUpdateRequest{
		StudentID: studentID,
		CourseID:  courseID,
		LessonID:  lessonID,
		Completed: false,
		TimeSpent: elapsed,
	})
	if err != nil {
		return 0, err
	}

	log.WithField("student_id", studentID).WithField("lesson_id", lessonID).
		WithField("seconds", elapsed).Debug("Lesson sitting closed")
	return elapsed, nil
}

func timerKey(studentID, courseID, lessonID string) string {
	return studentID + "|" + courseID + "|" + lessonID
}
