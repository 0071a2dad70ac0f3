package patients

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientUsecase struct {
	items      []responses.Patient
	listCalled bool
}

func (f *fakePatientUsecase) ListPatients(ctx context.Context, session *models.Session, page *requests.Pagination) ([]responses.Patient, int, error) {
	f.listCalled = true
	return f.items, len(f.items), nil
}

func (f *fakePatientUsecase) GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error) {
	return nil, nil
}

func (f *fakePatientUsecase) CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error) {
	return nil, nil
}

func (f *fakePatientUsecase) UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	return nil, nil
}

func (f *fakePatientUsecase) DeletePatient(ctx context.Context, session *models.Session, patientID string) error {
	return nil
}

func listRequestWithSession(session *models.Session) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_KEY, session)
	return req.WithContext(ctx)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestListPatientsUnlinkedPatientGetsEmptyScopedList(t *testing.T) {
	usecase := &fakePatientUsecase{items: []responses.Patient{{ID: "7", Name: "Jo Hart"}}}
	controller := NewPatientController(usecase, zap.NewNop())

	rec := httptest.NewRecorder()
	controller.ListPatients(rec, listRequestWithSession(&models.Session{
		SessionID: "sess-1",
		Role:      constvars.RolePatient,
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, usecase.listCalled)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, constvars.PatientProfileNotLinked, body.Message)

	var scoped responses.PatientScopedList
	require.NoError(t, json.Unmarshal(body.Data, &scoped))
	assert.False(t, scoped.ProfileLinked)
	assert.Equal(t, constvars.PatientProfileNotLinked, scoped.Message)
	items, ok := scoped.Items.([]interface{})
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestListPatientsLinkedPatientGetsScopedItems(t *testing.T) {
	usecase := &fakePatientUsecase{items: []responses.Patient{{ID: "7", Name: "Jo Hart"}}}
	controller := NewPatientController(usecase, zap.NewNop())

	rec := httptest.NewRecorder()
	controller.ListPatients(rec, listRequestWithSession(&models.Session{
		SessionID: "sess-1",
		Role:      constvars.RolePatient,
		PatientID: "7",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, usecase.listCalled)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	var scoped responses.PatientScopedList
	require.NoError(t, json.Unmarshal(body.Data, &scoped))
	assert.True(t, scoped.ProfileLinked)
}

func TestListPatientsMissingSession(t *testing.T) {
	controller := NewPatientController(&fakePatientUsecase{}, zap.NewNop())

	rec := httptest.NewRecorder()
	controller.ListPatients(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
