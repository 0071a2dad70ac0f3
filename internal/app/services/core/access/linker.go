package access

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// PatientLinker resolves the patient record belonging to a patient-role
// account by exact email match. Zero matches is the legitimate NotLinked
// state (the account was created before its patient profile), reported as an
// empty id rather than an error.
type PatientLinker struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientLinker(patientRepository contracts.PatientRepository, log *zap.Logger) *PatientLinker {
	return &PatientLinker{
		PatientRepository: patientRepository,
		Log:               log,
	}
}

// Resolve returns the linked patient id, or "" when no patient record
// matches the account email. Safe to call on every request; callers cache
// the result in the session and re-resolve after login.
func (l *PatientLinker) Resolve(ctx context.Context, accountEmail string) (string, error) {
	patient, err := l.PatientRepository.FindByEmail(ctx, accountEmail)
	if err != nil {
		return "", err
	}
	if patient == nil {
		l.Log.Info("patientLinker.Resolve no patient record for account",
			zap.String("email", accountEmail),
		)
		return "", nil
	}
	return patient.ID, nil
}

// EnsureLinked refreshes the session's linked patient id when a patient
// session predates its profile. Non-patient roles are returned untouched.
func (l *PatientLinker) EnsureLinked(ctx context.Context, role, email, currentPatientID string) (string, error) {
	if role != constvars.RolePatient || currentPatientID != "" {
		return currentPatientID, nil
	}
	return l.Resolve(ctx, email)
}
