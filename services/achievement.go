package services

import (
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mapalk/mapa_core/model"
)

// AchievementService owns awarded achievements. Every award carries a stable
// dedup key and the store enforces at most one award per (student, key), so
// re-triggering an already-satisfied condition never duplicates a badge.
type AchievementService struct {
	context.DefaultService

	storageSvc *StorageService
}

const ACHIEVEMENT_SVC = "achievement_svc"

func (svc AchievementService) Id() string {
	return ACHIEVEMENT_SVC
}

func (svc *AchievementService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AchievementService) Start() error {
	if svc.storageSvc == nil {
		svc.storageSvc = svc.Service(STORAGE_SVC).(*StorageService)
	}
	return nil
}

// Award grants the achievement unless the student already holds one with the
// same dedup key. The second return value reports whether a new award was
// created; when false the existing achievement is returned untouched.
func (svc *AchievementService) Award(studentID, dedupKey, title, description, icon, courseID string) (*model.Achievement, bool, error) {
	achievements := svc.storageSvc.Achievements()
	for _, a := range achievements {
		if a.StudentID == studentID && a.DedupKey == dedupKey {
			return &a, false, nil
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, false, err
	}

	achievement := model.Achievement{
		ID:          id.String(),
		StudentID:   studentID,
		DedupKey:    dedupKey,
		Title:       title,
		Description: description,
		Icon:        icon,
		CourseID:    courseID,
		EarnedAt:    time.Now(),
	}

	if err := svc.storageSvc.PutAchievements(append(achievements, achievement)); err != nil {
		return nil, false, err
	}

	recordStoreOp("achievement", "award")
	recordAchievementAwarded()
	log.WithField("student_id", studentID).WithField("dedup_key", dedupKey).Info("Achievement awarded")
	return &achievement, true, nil
}

// ByStudent returns the student's achievements in award order.
func (svc *AchievementService) ByStudent(studentID string) []model.Achievement {
	matched := make([]model.Achievement, 0)
	for _, a := range svc.storageSvc.Achievements() {
		if a.StudentID == studentID {
			matched = append(matched, a)
		}
	}
	return matched
}
