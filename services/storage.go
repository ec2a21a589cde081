package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/mapalk/mapa_core/model"
	"github.com/mapalk/mapa_core/shared"
)

// StorageService is the persistence medium: five named JSON documents in a
// local data directory (users, courses, progress, achievements plus the
// currentSession singleton). Collections are held in memory as their
// serialized form and replaced wholesale on every write, so readers always
// get an independent copy. A single process owns the directory; two
// processes sharing it race on a last-writer-wins basis.
type StorageService struct {
	context.DefaultService

	mu  sync.Mutex
	dir string

	collections map[string][]byte
}

const STORAGE_SVC = "storage_svc"

func (svc *StorageService) Id() string {
	return STORAGE_SVC
}

// NewStorageService builds a store rooted at dir for callers outside the
// service container (the seed CLI and tests).
func NewStorageService(dir string) *StorageService {
	return &StorageService{dir: dir}
}

func (svc *StorageService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

// Start creates the data directory if needed and loads any collections
// already persisted there.
func (svc *StorageService) Start() error {
	if svc.dir == "" {
		svc.dir = os.Getenv("DATA_DIR")
	}
	if svc.dir == "" {
		svc.dir = "./data"
	}

	if err := os.MkdirAll(svc.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", svc.dir, err)
	}

	svc.collections = map[string][]byte{}
	names := []string{
		shared.UsersCollection,
		shared.CoursesCollection,
		shared.ProgressCollection,
		shared.AchievementsCollection,
		shared.SessionCollection,
	}
	for _, name := range names {
		raw, err := os.ReadFile(svc.collectionPath(name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("load collection %s: %w", name, err)
		}
		svc.collections[name] = raw
	}

	log.WithField("dir", svc.dir).Info("Storage loaded")
	return nil
}

func (svc *StorageService) Shutdown() {
}

func (svc *StorageService) Users() []model.User {
	var users []model.User
	svc.read(shared.UsersCollection, &users)
	return users
}

func (svc *StorageService) PutUsers(users []model.User) error {
	setCollectionSize(shared.UsersCollection, len(users))
	return svc.put(shared.UsersCollection, users)
}

func (svc *StorageService) Courses() []model.Course {
	var courses []model.Course
	svc.read(shared.CoursesCollection, &courses)
	return courses
}

func (svc *StorageService) PutCourses(courses []model.Course) error {
	setCollectionSize(shared.CoursesCollection, len(courses))
	return svc.put(shared.CoursesCollection, courses)
}

func (svc *StorageService) Progress() []model.ProgressRecord {
	var records []model.ProgressRecord
	svc.read(shared.ProgressCollection, &records)
	return records
}

func (svc *StorageService) PutProgress(records []model.ProgressRecord) error {
	setCollectionSize(shared.ProgressCollection, len(records))
	return svc.put(shared.ProgressCollection, records)
}

func (svc *StorageService) Achievements() []model.Achievement {
	var achievements []model.Achievement
	svc.read(shared.AchievementsCollection, &achievements)
	return achievements
}

func (svc *StorageService) PutAchievements(achievements []model.Achievement) error {
	setCollectionSize(shared.AchievementsCollection, len(achievements))
	return svc.put(shared.AchievementsCollection, achievements)
}

func (svc *StorageService) Session() *model.Session {
	var session *model.Session
	svc.read(shared.SessionCollection, &session)
	return session
}

func (svc *StorageService) PutSession(session *model.Session) error {
	return svc.put(shared.SessionCollection, session)
}

func (svc *StorageService) ClearSession() error {
	svc.mu.Lock()
	delete(svc.collections, shared.SessionCollection)
	svc.mu.Unlock()

	err := os.Remove(svc.collectionPath(shared.SessionCollection))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (svc *StorageService) read(name string, out interface{}) {
	svc.mu.Lock()
	raw := svc.collections[name]
	svc.mu.Unlock()

	if len(raw) == 0 {
		return
	}
	if err := shared.JSON.Unmarshal(raw, out); err != nil {
		log.WithError(err).WithField("collection", name).Error("Failed to decode collection")
	}
}

func (svc *StorageService) put(name string, v interface{}) error {
	raw, err := shared.JSON.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}

	svc.mu.Lock()
	svc.collections[name] = raw
	svc.mu.Unlock()

	return svc.persist(name, raw)
}

// persist replaces the collection file. Write-then-rename keeps a crash from
// truncating the previous copy.
func (svc *StorageService) persist(name string, raw []byte) error {
	start := time.Now()

	path := svc.collectionPath(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace collection %s: %w", name, err)
	}

	observeStorageWrite(name, time.Since(start))
	return nil
}

func (svc *StorageService) collectionPath(name string) string {
	return filepath.Join(svc.dir, name+".json")
}
