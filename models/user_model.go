package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

type LoginMethod string

const (
	LoginMethodEmail  LoginMethod = "email"
	LoginMethodGoogle LoginMethod = "google"
)

// UserProfile is the profile slot held in the store, separate from the
// authenticated session record.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SessionUser is the record persisted across restarts after a successful
// login. It never carries a password.
type SessionUser struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        Role        `json:"role"`
	LoginMethod LoginMethod `json:"login_method"`
	Phone       string      `json:"phone,omitempty"`
	City        string      `json:"city,omitempty"`
}
