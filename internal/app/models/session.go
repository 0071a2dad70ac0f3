package models

import "time"

// Session is the identity resolved at login. Role is authoritative for the
// whole session. PatientID is the linked patient record id for patient-role
// accounts; empty means NotLinked, which every patient-scoped screen must
// treat as a first-class state.
type Session struct {
	SessionID string    `json:"session_id"`
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	PatientID string    `json:"patient_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) PatientLinked() bool {
	return s.PatientID != ""
}
