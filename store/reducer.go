package store

import (
	"github.com/admindocentes/backend/models"
)

// State is the whole domain snapshot. Values handed out by the store are deep
// copies; the reducer never mutates its input.
type State struct {
	CurrentRole     models.Role            `json:"current_role"`
	UserProfile     models.UserProfile     `json:"user_profile"`
	TeacherProfile  *models.TeacherProfile `json:"teacher_profile"`
	TeacherSchedule models.Schedule        `json:"teacher_schedule"`
	CurrentTeacher  *models.TeacherDraft   `json:"current_teacher"`
	Teachers        []models.Teacher       `json:"teachers"`
	Proposals       []models.Proposal      `json:"proposals"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	out.TeacherProfile = s.TeacherProfile.Clone()
	out.TeacherSchedule = s.TeacherSchedule.Clone()
	out.CurrentTeacher = s.CurrentTeacher.Clone()
	out.Teachers = append([]models.Teacher(nil), s.Teachers...)
	out.Proposals = append([]models.Proposal(nil), s.Proposals...)
	return out
}

// Reduce is the pure transition function. It is total: it never errors,
// an unknown action type or an unmatched identifier returns the state
// unchanged, and every transition completes synchronously.
func Reduce(state State, action Action) State {
	switch action.Type {
	case ActionSetRole:
		next := state
		next.CurrentRole = action.Role
		return next

	case ActionSetUserProfile:
		if action.UserProfile == nil {
			return state
		}
		next := state
		next.UserProfile = *action.UserProfile
		return next

	case ActionSaveTeacherProfile:
		next := state
		next.TeacherProfile = action.TeacherProfile.Clone()
		return next

	case ActionUpdateTeacherSchedule:
		next := state
		next.TeacherSchedule = action.Schedule.Clone()
		return next

	case ActionSetCurrentTeacher:
		next := state
		next.CurrentTeacher = action.Draft.Clone()
		return next

	case ActionAddTeacher:
		if action.Teacher == nil {
			return state
		}
		next := state
		next.Teachers = make([]models.Teacher, 0, len(state.Teachers)+1)
		next.Teachers = append(next.Teachers, state.Teachers...)
		next.Teachers = append(next.Teachers, *action.Teacher)
		return next

	case ActionUpdateTeacher:
		if action.Teacher == nil {
			return state
		}
		return replaceTeacher(state, *action.Teacher)

	case ActionDeleteTeacher:
		next := state
		next.Teachers = make([]models.Teacher, 0, len(state.Teachers))
		for _, t := range state.Teachers {
			if t.ID != action.TeacherID {
				next.Teachers = append(next.Teachers, t)
			}
		}
		return next

	case ActionCreateProposal:
		if action.Proposal == nil {
			return state
		}
		created := *action.Proposal
		created.Status = models.ProposalStatusPending
		next := state
		next.Proposals = make([]models.Proposal, 0, len(state.Proposals)+1)
		next.Proposals = append(next.Proposals, created)
		next.Proposals = append(next.Proposals, state.Proposals...)
		return next

	case ActionUpdateProposalStatus:
		next := state
		next.Proposals = append([]models.Proposal(nil), state.Proposals...)
		for i, p := range next.Proposals {
			if p.ID == action.ProposalID {
				next.Proposals[i].Status = action.Status
			}
		}
		return next

	case ActionUpdateProposal:
		if action.Proposal == nil {
			return state
		}
		next := state
		next.Proposals = append([]models.Proposal(nil), state.Proposals...)
		for i, p := range next.Proposals {
			if p.ID == action.Proposal.ID {
				next.Proposals[i] = *action.Proposal
			}
		}
		return next

	case ActionDeleteProposal:
		next := state
		next.Proposals = make([]models.Proposal, 0, len(state.Proposals))
		for _, p := range state.Proposals {
			if p.ID != action.ProposalID {
				next.Proposals = append(next.Proposals, p)
			}
		}
		return next

	case ActionPromoteCurrentTeacher:
		draft := state.CurrentTeacher
		if draft == nil || !draft.Paid {
			return state
		}
		promoted := models.Teacher{
			ID:         draft.ID,
			Name:       draft.Name,
			Subject:    draft.Subject,
			Price:      draft.Price,
			Location:   draft.Location,
			Experience: draft.Experience,
			Status:     models.TeacherStatusPending,
		}
		next := state
		next.Teachers = make([]models.Teacher, 0, len(state.Teachers)+1)
		next.Teachers = append(next.Teachers, state.Teachers...)
		next.Teachers = append(next.Teachers, promoted)
		return next

	case ActionClearTeacherData:
		// Deliberately broad: wipes the shared roster and proposals along
		// with the teacher's own draft data.
		next := state
		next.TeacherProfile = nil
		next.TeacherSchedule = nil
		next.CurrentTeacher = nil
		next.Teachers = []models.Teacher{}
		next.Proposals = []models.Proposal{}
		return next

	default:
		return state
	}
}

func replaceTeacher(state State, teacher models.Teacher) State {
	next := state
	next.Teachers = append([]models.Teacher(nil), state.Teachers...)
	for i, t := range next.Teachers {
		if t.ID == teacher.ID {
			next.Teachers[i] = teacher
		}
	}
	return next
}
