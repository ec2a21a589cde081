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

// IdentityService holds user records and the session pointer to the current
// user. Authorization is the caller's concern; the store trusts whoever
// invokes it.
type IdentityService struct {
	context.DefaultService

	storageSvc *StorageService
}

const IDENTITY_SVC = "identity_svc"

func (svc IdentityService) Id() string {
	return IDENTITY_SVC
}

func (svc *IdentityService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *IdentityService) Start() error {
	if svc.storageSvc == nil {
		svc.storageSvc = svc.Service(STORAGE_SVC).(*StorageService)
	}
	return nil
}

// Register creates a user with the role fixed at creation. Email uniqueness
// is a case-sensitive exact match against every existing user.
func (svc *IdentityService) Register(req dto.RegisterRequest) (string, error) {
	if err := dto.GetValidator().Struct(req); err != nil {
		return "", err
	}

	users := svc.storageSvc.Users()
	for _, u := range users {
		if u.Email == req.Email {
			return "", shared.ErrDuplicateEmail
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	user := model.User{
		ID:             id.String(),
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           model.Role(req.Role),
		Phone:          req.Phone,
		Grade:          req.Grade,
		Subject:        req.Subject,
		Experience:     req.Experience,
		Qualifications: req.Qualifications,
		Department:     req.Department,
		CreatedAt:      time.Now(),
	}
	if user.Role == model.RoleStudent {
		user.AssignedCourses = []string{}
	}

	if err := svc.storageSvc.PutUsers(append(users, user)); err != nil {
		return "", err
	}

	recordStoreOp("identity", "register")
	log.WithField("user_id", user.ID).WithField("role", user.Role).Info("User registered")
	return user.ID, nil
}

// Authenticate scans for an exact email+credential match and persists the
// session with the credential stripped out. Deliberately demo-grade: no
// hashing, no rate limiting.
func (svc *IdentityService) Authenticate(email, password string) (*model.Session, error) {
	for _, u := range svc.storageSvc.Users() {
		if u.Email == email && u.Password == password {
			session := &model.Session{User: u.Public(), LoginAt: time.Now()}
			if err := svc.storageSvc.PutSession(session); err != nil {
				return nil, err
			}
			recordStoreOp("identity", "login")
			return session, nil
		}
	}
	return nil, shared.ErrInvalidCredential
}

func (svc *IdentityService) Logout() error {
	return svc.storageSvc.ClearSession()
}

// CurrentSession returns the persisted session, or nil when nobody is
// logged in.
func (svc *IdentityService) CurrentSession() *model.Session {
	return svc.storageSvc.Session()
}

// Promote overwrites the user's role. The store performs no authorization
// check; gating the action is the presentation layer's job.
func (svc *IdentityService) Promote(userID string, role model.Role) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role %q", role)
	}

	users := svc.storageSvc.Users()
	for i := range users {
		if users[i].ID == userID {
			users[i].Role = role
			if err := svc.storageSvc.PutUsers(users); err != nil {
				return err
			}
			recordStoreOp("identity", "promote")
			log.WithField("user_id", userID).WithField("role", role).Info("User promoted")
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", userID, shared.ErrNotFound)
}

// UpdateProfile merges the given fields into the user record. Fields are
// never removed. When the current session belongs to the updated user its
// stored copy is refreshed too.
func (svc *IdentityService) UpdateProfile(userID string, req dto.ProfileUpdateRequest) error {
	if err := dto.GetValidator().Struct(req); err != nil {
		return err
	}

	users := svc.storageSvc.Users()
	for i := range users {
		if users[i].ID != userID {
			continue
		}

		applyProfileUpdate(&users[i], req)
		if err := svc.storageSvc.PutUsers(users); err != nil {
			return err
		}

		if session := svc.storageSvc.Session(); session != nil && session.User.ID == userID {
			session.User = users[i].Public()
			if err := svc.storageSvc.PutSession(session); err != nil {
				return err
			}
		}

		recordStoreOp("identity", "update_profile")
		return nil
	}
	return fmt.Errorf("user %s: %w", userID, shared.ErrNotFound)
}

func applyProfileUpdate(u *model.User, req dto.ProfileUpdateRequest) {
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Grade != nil {
		u.Grade = *req.Grade
	}
	if req.Subject != nil {
		u.Subject = *req.Subject
	}
	if req.Experience != nil {
		u.Experience = *req.Experience
	}
	if req.Qualifications != nil {
		u.Qualifications = *req.Qualifications
	}
	if req.Department != nil {
		u.Department = *req.Department
	}
}

func (svc *IdentityService) GetUser(userID string) (*model.User, error) {
	for _, u := range svc.storageSvc.Users() {
		if u.ID == userID {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", userID, shared.ErrNotFound)
}

func (svc *IdentityService) Users() []model.User {
	return svc.storageSvc.Users()
}

func (svc *IdentityService) UsersByRole(role model.Role) []model.User {
	matched := make([]model.User, 0)
	for _, u := range svc.storageSvc.Users() {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched
}
