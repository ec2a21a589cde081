package model

import "time"

// Role is fixed at registration and only changes through an explicit
// admin promotion.
type Role string

const (
	RoleStudent     Role = "student"
	RoleTeacher     Role = "teacher"
	RoleCourseAdmin Role = "course_admin"
	RoleSiteAdmin   Role = "site_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleCourseAdmin, RoleSiteAdmin:
		return true
	}
	return false
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Compared as an opaque string on login. Demo-grade, not hashed.
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`

	// Student fields
	Grade           string   `json:"grade,omitempty"`
	AssignedCourses []string `json:"assigned_courses"`

	// Teacher fields
	Subject        string `json:"subject,omitempty"`
	Experience     int    `json:"experience,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`

	// Admin fields
	Department string `json:"department,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Public returns a copy safe to hand outside the identity store.
func (u User) Public() User {
	u.Password = ""
	return u
}

// Session is the singleton pointer to the logged-in user. The credential is
// stripped before it is ever stored.
type Session struct {
	User    User      `json:"user"`
	LoginAt time.Time `json:"login_at"`
}
