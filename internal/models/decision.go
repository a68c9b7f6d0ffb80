package models

import "fmt"

// DecisionStatus is the reviewer's outcome for a single current petition.
type DecisionStatus string

const (
	StatusPending           DecisionStatus = "pending"
	StatusApprovedStaff     DecisionStatus = "approved_staff"
	StatusDeniedStaff       DecisionStatus = "denied_staff"
	StatusEscalateCommittee DecisionStatus = "escalate_committee"
)

// ParseDecisionStatus validates a status value coming from the API.
func ParseDecisionStatus(s string) (DecisionStatus, error) {
	switch DecisionStatus(s) {
	case StatusPending, StatusApprovedStaff, StatusDeniedStaff, StatusEscalateCommittee:
		return DecisionStatus(s), nil
	}
	return "", fmt.Errorf("unknown decision status %q", s)
}

// Label returns the text written in exported reports. The section office
// (SG) decides directly; escalated petitions go to the course committee (COC).
func (s DecisionStatus) Label() string {
	switch s {
	case StatusApprovedStaff:
		return "Deferido SG"
	case StatusDeniedStaff:
		return "Indeferido SG"
	case StatusEscalateCommittee:
		return "Para análise COC."
	default:
		return "Pendente"
	}
}

// RequiresJustification reports whether the status must carry a justification
// text. Statuses without one have their justification cleared on write.
func (s DecisionStatus) RequiresJustification() bool {
	return s == StatusDeniedStaff || s == StatusEscalateCommittee
}

// DecisionRecord is the reviewer's stored decision for one petition row.
type DecisionRecord struct {
	Key           string         `json:"key"`
	Status        DecisionStatus `json:"status"`
	Justification string         `json:"justificativa"`
}

// DecisionKey builds the composite key for a petition row. The row id is the
// stable synthetic one assigned at load time, not a file position.
func DecisionKey(nusp int, problem string, rowID int) string {
	return fmt.Sprintf("%d_%s_%d", nusp, problem, rowID)
}
