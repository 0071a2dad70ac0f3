package access

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patientsByEmail map[string]*models.Patient
	findByEmailErr  error
}

func (f *fakePatientRepository) FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	if f.findByEmailErr != nil {
		return nil, f.findByEmailErr
	}
	return f.patientsByEmail[email], nil
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (f *fakePatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return nil
}

func (f *fakePatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	return nil
}

func (f *fakePatientRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return 0, nil
}

func TestPatientLinkerResolve(t *testing.T) {
	repo := &fakePatientRepository{
		patientsByEmail: map[string]*models.Patient{
			"jo@example.com": {ID: "7", Email: "jo@example.com"},
		},
	}
	linker := NewPatientLinker(repo, zap.NewNop())

	t.Run("matching email yields the patient id", func(t *testing.T) {
		id, err := linker.Resolve(context.Background(), "jo@example.com")
		require.NoError(t, err)
		assert.Equal(t, "7", id)
	})

	t.Run("no match is the NotLinked state, not an error", func(t *testing.T) {
		id, err := linker.Resolve(context.Background(), "nobody@example.com")
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestPatientLinkerEnsureLinked(t *testing.T) {
	repo := &fakePatientRepository{
		patientsByEmail: map[string]*models.Patient{
			"jo@example.com": {ID: "7", Email: "jo@example.com"},
		},
	}
	linker := NewPatientLinker(repo, zap.NewNop())

	t.Run("non-patient roles are returned untouched", func(t *testing.T) {
		id, err := linker.EnsureLinked(context.Background(), constvars.RoleAdmin, "jo@example.com", "")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("already linked sessions keep their id", func(t *testing.T) {
		id, err := linker.EnsureLinked(context.Background(), constvars.RolePatient, "jo@example.com", "42")
		require.NoError(t, err)
		assert.Equal(t, "42", id)
	})

	t.Run("unlinked patient session is refreshed from the store", func(t *testing.T) {
		id, err := linker.EnsureLinked(context.Background(), constvars.RolePatient, "jo@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "7", id)
	})

	t.Run("still-unlinked session resolves to empty without error", func(t *testing.T) {
		id, err := linker.EnsureLinked(context.Background(), constvars.RolePatient, "nobody@example.com", "")
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}
