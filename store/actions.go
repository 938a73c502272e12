package store

import (
	"github.com/admindocentes/backend/models"
	"github.com/admindocentes/backend/utils"
)

type ActionType string

const (
	ActionSetRole               ActionType = "SET_ROLE"
	ActionSetUserProfile        ActionType = "SET_USER_PROFILE"
	ActionSaveTeacherProfile    ActionType = "SAVE_TEACHER_PROFILE"
	ActionUpdateTeacherSchedule ActionType = "UPDATE_TEACHER_SCHEDULE"
	ActionSetCurrentTeacher     ActionType = "SET_CURRENT_TEACHER"
	ActionAddTeacher            ActionType = "ADD_TEACHER"
	ActionUpdateTeacher         ActionType = "UPDATE_TEACHER"
	ActionDeleteTeacher         ActionType = "DELETE_TEACHER"
	ActionCreateProposal        ActionType = "CREATE_PROPOSAL"
	ActionUpdateProposalStatus  ActionType = "UPDATE_PROPOSAL_STATUS"
	ActionUpdateProposal        ActionType = "UPDATE_PROPOSAL"
	ActionDeleteProposal        ActionType = "DELETE_PROPOSAL"
	ActionPromoteCurrentTeacher ActionType = "PROMOTE_CURRENT_TEACHER"
	ActionClearTeacherData      ActionType = "CLEAR_TEACHER_DATA"
)

// Action is the closed payload union consumed by Reduce. Only the fields
// relevant to the Type are read; the rest stay zero.
type Action struct {
	Type           ActionType
	Role           models.Role
	UserProfile    *models.UserProfile
	TeacherProfile *models.TeacherProfile
	Schedule       models.Schedule
	Draft          *models.TeacherDraft
	Teacher        *models.Teacher
	TeacherID      string
	Proposal       *models.Proposal
	ProposalID     string
	Status         models.ProposalStatus
}

func SetRole(role models.Role) Action {
	return Action{Type: ActionSetRole, Role: role}
}

func SetUserProfile(profile models.UserProfile) Action {
	return Action{Type: ActionSetUserProfile, UserProfile: &profile}
}

func SaveTeacherProfile(profile models.TeacherProfile) Action {
	return Action{Type: ActionSaveTeacherProfile, TeacherProfile: &profile}
}

func UpdateTeacherSchedule(schedule models.Schedule) Action {
	return Action{Type: ActionUpdateTeacherSchedule, Schedule: schedule}
}

func SetCurrentTeacher(draft models.TeacherDraft) Action {
	if draft.ID == "" {
		draft.ID = utils.GenerateTeacherID()
	}
	return Action{Type: ActionSetCurrentTeacher, Draft: &draft}
}

func AddTeacher(teacher models.Teacher) Action {
	if teacher.ID == "" {
		teacher.ID = utils.GenerateTeacherID()
	}
	return Action{Type: ActionAddTeacher, Teacher: &teacher}
}

func UpdateTeacher(teacher models.Teacher) Action {
	return Action{Type: ActionUpdateTeacher, Teacher: &teacher}
}

func DeleteTeacher(teacherID string) Action {
	return Action{Type: ActionDeleteTeacher, TeacherID: teacherID}
}

// CreateProposal is the single creation path: the identifier is generated
// here and the reducer forces the status to pending whatever the caller set.
func CreateProposal(proposal models.Proposal) Action {
	if proposal.ID == "" {
		proposal.ID = utils.GenerateProposalID()
	}
	return Action{Type: ActionCreateProposal, Proposal: &proposal}
}

func UpdateProposalStatus(proposalID string, status models.ProposalStatus) Action {
	return Action{Type: ActionUpdateProposalStatus, ProposalID: proposalID, Status: status}
}

func UpdateProposal(proposal models.Proposal) Action {
	return Action{Type: ActionUpdateProposal, Proposal: &proposal}
}

func DeleteProposal(proposalID string) Action {
	return Action{Type: ActionDeleteProposal, ProposalID: proposalID}
}

// PromoteCurrentTeacher moves a paid registration draft into the roster.
func PromoteCurrentTeacher() Action {
	return Action{Type: ActionPromoteCurrentTeacher}
}

func ClearTeacherData() Action {
	return Action{Type: ActionClearTeacherData}
}
