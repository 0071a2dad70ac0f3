package middlewares

import (
	"context"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/core/access"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
	updated  *models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionService) UpdateSession(ctx context.Context, session *models.Session) error {
	f.updated = session
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type fakePatientRepository struct {
	patientsByEmail map[string]*models.Patient
}

func (f *fakePatientRepository) FindAll(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
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

func newTestMiddlewares(sessions map[string]*models.Session, patientsByEmail map[string]*models.Patient) (*Middlewares, *fakeSessionService) {
	sessionService := &fakeSessionService{sessions: sessions}
	linker := access.NewPatientLinker(&fakePatientRepository{patientsByEmail: patientsByEmail}, zap.NewNop())
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	return New(zap.NewNop(), sessionService, linker, internalConfig), sessionService
}

func TestRequestIDMiddleware(t *testing.T) {
	m, _ := newTestMiddlewares(map[string]*models.Session{}, nil)

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps the client supplied id", func(t *testing.T) {
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-id-1", rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestAuthenticate(t *testing.T) {
	session := &models.Session{
		SessionID: "sess-1",
		AccountID: "acc-1",
		Email:     "jo@example.com",
		Role:      constvars.RolePatient,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	t.Run("missing token is rejected", func(t *testing.T) {
		m, _ := newTestMiddlewares(map[string]*models.Session{}, nil)
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a token")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches the session", func(t *testing.T) {
		m, _ := newTestMiddlewares(map[string]*models.Session{"sess-1": session}, nil)
		token, err := utils.GenerateJWT("sess-1", "test-secret", time.Hour)
		require.NoError(t, err)

		var attached *models.Session
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attached = utils.GetSessionFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.NotNil(t, attached)
		assert.Equal(t, "acc-1", attached.AccountID)
	})

	t.Run("stale unlinked patient session is refreshed", func(t *testing.T) {
		m, sessionService := newTestMiddlewares(
			map[string]*models.Session{"sess-1": session},
			map[string]*models.Patient{"jo@example.com": {ID: "7", Email: "jo@example.com"}},
		)
		token, err := utils.GenerateJWT("sess-1", "test-secret", time.Hour)
		require.NoError(t, err)

		var attached *models.Session
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attached = utils.GetSessionFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, attached)
		assert.Equal(t, "7", attached.PatientID)
		require.NotNil(t, sessionService.updated)
		assert.Equal(t, "7", sessionService.updated.PatientID)
	})

	t.Run("token for an expired session is rejected", func(t *testing.T) {
		m, _ := newTestMiddlewares(map[string]*models.Session{}, nil)
		token, err := utils.GenerateJWT("sess-gone", "test-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for a dead session")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthenticateOptional(t *testing.T) {
	m, _ := newTestMiddlewares(map[string]*models.Session{}, nil)

	t.Run("anonymous request passes through without a session", func(t *testing.T) {
		var ran bool
		handler := m.AuthenticateOptional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ran = true
			assert.Nil(t, utils.GetSessionFromContext(r.Context()))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.True(t, ran)
	})

	t.Run("garbage token is still rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		m.AuthenticateOptional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with an invalid token")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	m, _ := newTestMiddlewares(map[string]*models.Session{}, nil)

	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
