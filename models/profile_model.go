package models

// Weekday names and the bookable slot catalog mirror the seven-day,
// 06:00-21:00 hourly grid the registration flow offers.
var Weekdays = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

var TimeSlots = []string{
	"06:00", "07:00", "08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00",
}

// Schedule maps a weekday name to the slot labels a teacher marked available.
// No overlap or duration validation is applied.
type Schedule map[string][]string

// Clone returns a deep copy so snapshots never share the underlying slices.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for day, slots := range s {
		out[day] = append([]string(nil), slots...)
	}
	return out
}

// TeacherProfile is a self-registration draft. It never becomes a roster
// Teacher implicitly; promotion happens only through the paid activation flow.
type TeacherProfile struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Specialties     []string `json:"specialties"`
	Experience      string   `json:"experience"`
	Description     string   `json:"description"`
	Province        string   `json:"province"`
	City            string   `json:"city"`
	InstitutionType string   `json:"institution_type"`
	HourlyPrice     float64  `json:"hourly_price"`
	Availability    string   `json:"availability"`
}

func (p *TeacherProfile) Clone() *TeacherProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.Specialties = append([]string(nil), p.Specialties...)
	return &out
}

// TeacherDraft is the transient registration record carried through the
// payment step. Paid flips after a confirmed (simulated) payment.
type TeacherDraft struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Subject    string  `json:"subject"`
	Price      float64 `json:"price"`
	Location   string  `json:"location"`
	Experience string  `json:"experience"`
	Paid       bool    `json:"paid"`
}

func (d *TeacherDraft) Clone() *TeacherDraft {
	if d == nil {
		return nil
	}
	out := *d
	return &out
}
