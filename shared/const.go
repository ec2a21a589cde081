package shared

const (
	// Persisted collection names. Stable so existing data directories keep
	// loading across releases.
	UsersCollection        = "users"
	CoursesCollection      = "courses"
	ProgressCollection     = "progress"
	AchievementsCollection = "achievements"
	SessionCollection      = "currentSession"

	CategoryEnglish = "english"
	CategoryTamil   = "tamil"

	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Achievement dedup keys. An award is granted at most once per
// (student, key) pair, so the key must be stable for its triggering event.
const (
	FirstLessonKey        = "first-lesson"
	courseCompletedPrefix = "course-completed:"
)

func CourseCompletedKey(courseID string) string {
	return courseCompletedPrefix + courseID
}
