package models

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// ValidProposalStatus reports whether s is one of the three lifecycle values.
func ValidProposalStatus(s ProposalStatus) bool {
	switch s {
	case ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected:
		return true
	}
	return false
}

// Requester is the prospective student embedded in a proposal. It is not
// normalized into its own collection; analytics deduplicate by email.
type Requester struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Proposal is a request from a prospective student to a teacher. TeacherID is
// a foreign key by convention only; deleting a teacher leaves its proposals
// in place.
type Proposal struct {
	ID        string         `json:"id"`
	TeacherID string         `json:"teacher_id"`
	Requester Requester      `json:"user"`
	Message   string         `json:"message"`
	Status    ProposalStatus `json:"status"`
	Date      string         `json:"date"`
	Price     float64        `json:"price"`
}
