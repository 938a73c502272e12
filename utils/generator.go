package utils

import (
	"github.com/google/uuid"
)

// GenerateTeacherID returns a fresh roster identifier.
func GenerateTeacherID() string {
	return uuid.NewString()
}

// GenerateProposalID returns a fresh proposal identifier with the p_ prefix
// the mobile client already expects.
func GenerateProposalID() string {
	return "p_" + uuid.NewString()
}
