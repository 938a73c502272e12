package models

type TeacherStatus string

const (
	TeacherStatusActive   TeacherStatus = "active"
	TeacherStatusInactive TeacherStatus = "inactive"
	TeacherStatusPending  TeacherStatus = "pending"
)

// Teacher is a tutor listed in the administrative roster, distinct from the
// self-registration draft in TeacherProfile.
type Teacher struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Subject    string        `json:"subject"`
	Rating     float32       `json:"rating"`
	Price      float64       `json:"price"`
	Location   string        `json:"location"`
	Experience string        `json:"experience"`
	Status     TeacherStatus `json:"status"`
}
