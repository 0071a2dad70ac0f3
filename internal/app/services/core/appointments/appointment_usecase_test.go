package appointments

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	byID          map[string]*models.Appointment
	existingCount int64
	created       *models.Appointment
	updated       *models.Appointment
	deletedID     string
}

func (f *fakeAppointmentRepository) FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Appointment, int, error) {
	items := make([]models.Appointment, 0)
	for _, appointment := range f.byID {
		items = append(items, *appointment)
	}
	return items, len(items), nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := f.byID[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	appointment.ID = "appt-1"
	f.created = appointment
	return appointment.ID, nil
}

func (f *fakeAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	f.updated = appointment
	return nil
}

func (f *fakeAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	f.deletedID = appointmentID
	return nil
}

func (f *fakeAppointmentRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return f.existingCount, nil
}

type fakePatientRepository struct {
	byID map[string]*models.Patient
}

func (f *fakePatientRepository) FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.byID[patientID], nil
}

func (f *fakePatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return nil, nil
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

type fakeDoctorRepository struct {
	byID map[string]*models.Doctor
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Doctor, int, error) {
	return nil, 0, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return f.byID[doctorID], nil
}

func (f *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	return "", nil
}

func (f *fakeDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return nil
}

func (f *fakeDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	return nil
}

func (f *fakeDoctorRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return 0, nil
}

type fakeEventPublisher struct {
	events []*contracts.ResourceEvent
}

func (f *fakeEventPublisher) PublishResourceEvent(ctx context.Context, event *contracts.ResourceEvent) error {
	f.events = append(f.events, event)
	return nil
}

func newTestUsecase(appointmentRepo *fakeAppointmentRepository, publisher *fakeEventPublisher) contracts.AppointmentUsecase {
	patientRepo := &fakePatientRepository{byID: map[string]*models.Patient{
		"7": {ID: "7", Name: "Jo Hart"},
		"9": {ID: "9", Name: "Sam Reed"},
	}}
	doctorRepo := &fakeDoctorRepository{byID: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Dr. Lin"},
	}}
	return NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo, publisher, zap.NewNop())
}

func patientSession(patientID string) *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		AccountID: "acc-1",
		Email:     "jo@example.com",
		Role:      constvars.RolePatient,
		PatientID: patientID,
	}
}

func staffSession(role string) *models.Session {
	return &models.Session{
		SessionID: "sess-2",
		AccountID: "acc-2",
		Email:     "staff@example.com",
		Role:      role,
	}
}

func TestCreateAppointmentForcesOwnPatientID(t *testing.T) {
	repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{}}
	publisher := &fakeEventPublisher{}
	uc := newTestUsecase(repo, publisher)

	// Client claims another patient's id; the session wins.
	response, err := uc.CreateAppointment(context.Background(), patientSession("7"), &requests.CreateAppointment{
		PatientID:   "9",
		DoctorID:    "doc-1",
		ScheduledAt: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, "7", response.PatientID)
	assert.Equal(t, "7", repo.created.PatientID)
	assert.Equal(t, constvars.AppointmentStatusScheduled, repo.created.Status)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, constvars.ResourceAppointments, publisher.events[0].Resource)
}

func TestCreateAppointmentUnlinkedPatient(t *testing.T) {
	repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{}}
	uc := newTestUsecase(repo, &fakeEventPublisher{})

	_, err := uc.CreateAppointment(context.Background(), patientSession(""), &requests.CreateAppointment{
		DoctorID:    "doc-1",
		ScheduledAt: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientPatientProfileNotLinked, customErr.ClientMessage)
	assert.Nil(t, repo.created)
}

func TestCreateAppointmentQueueNumber(t *testing.T) {
	repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{}, existingCount: 4}
	uc := newTestUsecase(repo, &fakeEventPublisher{})

	response, err := uc.CreateAppointment(context.Background(), staffSession(constvars.RoleReceptionist), &requests.CreateAppointment{
		PatientID:   "9",
		DoctorID:    "doc-1",
		ScheduledAt: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, response.QueueNumber)
}

func TestUpdateAppointmentStatusTransitions(t *testing.T) {
	scheduled := &models.Appointment{ID: "appt-1", PatientID: "7", DoctorID: "doc-1", Status: constvars.AppointmentStatusScheduled}
	completed := &models.Appointment{ID: "appt-2", PatientID: "7", DoctorID: "doc-1", Status: constvars.AppointmentStatusCompleted}

	t.Run("owner patient may cancel a scheduled appointment", func(t *testing.T) {
		repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{"appt-1": scheduled}}
		uc := newTestUsecase(repo, &fakeEventPublisher{})

		response, err := uc.UpdateAppointmentStatus(context.Background(), patientSession("7"), "appt-1", &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusCancelled,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, response.Status)
	})

	t.Run("patient may not touch another patients appointment", func(t *testing.T) {
		repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{"appt-1": scheduled}}
		uc := newTestUsecase(repo, &fakeEventPublisher{})

		_, err := uc.UpdateAppointmentStatus(context.Background(), patientSession("9"), "appt-1", &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusCancelled,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("completed appointments are terminal", func(t *testing.T) {
		repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{"appt-2": completed}}
		uc := newTestUsecase(repo, &fakeEventPublisher{})

		_, err := uc.UpdateAppointmentStatus(context.Background(), staffSession(constvars.RoleAdmin), "appt-2", &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusCancelled,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestAppointmentRoleDenials(t *testing.T) {
	scheduled := &models.Appointment{ID: "appt-1", PatientID: "7", DoctorID: "doc-1", Status: constvars.AppointmentStatusScheduled}

	t.Run("patient may not delete appointments", func(t *testing.T) {
		repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{"appt-1": scheduled}}
		uc := newTestUsecase(repo, &fakeEventPublisher{})

		err := uc.DeleteAppointment(context.Background(), patientSession("7"), "appt-1")
		require.Error(t, err)
		assert.Empty(t, repo.deletedID)
	})

	t.Run("receptionist may not reschedule", func(t *testing.T) {
		repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{"appt-1": scheduled}}
		uc := newTestUsecase(repo, &fakeEventPublisher{})

		_, err := uc.UpdateAppointment(context.Background(), staffSession(constvars.RoleReceptionist), "appt-1", &requests.UpdateAppointment{
			DoctorID:    "doc-1",
			ScheduledAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		})
		require.Error(t, err)
		assert.Nil(t, repo.updated)
	})
}

func TestListAppointmentsDeniedRole(t *testing.T) {
	repo := &fakeAppointmentRepository{byID: map[string]*models.Appointment{}}
	uc := newTestUsecase(repo, &fakeEventPublisher{})

	_, _, err := uc.ListAppointments(context.Background(), &models.Session{Role: "auditor"}, &requests.Pagination{Page: 1, PageSize: 10})
	require.Error(t, err)
}
