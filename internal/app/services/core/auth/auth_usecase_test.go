package auth

import (
	"context"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/core/access"
	"medicore-service/internal/app/services/shared/ratelimiter"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeAccountRepository struct {
	byEmail map[string]*models.Account
	created *models.Account
}

func (f *fakeAccountRepository) CreateAccount(ctx context.Context, account *models.Account) (string, error) {
	account.ID = "acc-new"
	f.created = account
	f.byEmail[account.Email] = account
	return account.ID, nil
}

func (f *fakeAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepository) FindByID(ctx context.Context, accountID string) (*models.Account, error) {
	for _, account := range f.byEmail {
		if account.ID == accountID {
			return account, nil
		}
	}
	return nil, nil
}

type fakeSessionService struct {
	sessions map[string]*models.Session
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
	return session, nil
}

func (f *fakeSessionService) UpdateSession(ctx context.Context, session *models.Session) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type fakeRedisRepository struct {
	values   map[string]string
	counters map[string]int64
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.counters, key)
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
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

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			MaxLoginAttempts:       3,
			LoginAttemptWindowSecs: 300,
		},
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 1,
		},
	}
}

func newAuthFixture(t *testing.T, patientsByEmail map[string]*models.Patient) (*fakeAccountRepository, *fakeSessionService, *authUsecase) {
	t.Helper()

	accountRepo := &fakeAccountRepository{byEmail: map[string]*models.Account{}}
	sessionService := &fakeSessionService{sessions: map[string]*models.Session{}}
	redisRepo := &fakeRedisRepository{values: map[string]string{}, counters: map[string]int64{}}
	linker := access.NewPatientLinker(&fakePatientRepository{patientsByEmail: patientsByEmail}, zap.NewNop())
	limiter := ratelimiter.NewLoginLimiter(redisRepo, 3, 300, zap.NewNop())

	uc := NewAuthUsecase(accountRepo, sessionService, linker, limiter, testInternalConfig(), zap.NewNop()).(*authUsecase)
	return accountRepo, sessionService, uc
}

func seedAccount(t *testing.T, repo *fakeAccountRepository, email, password, role string, active bool) {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	repo.byEmail[email] = &models.Account{
		ID:       "acc-" + email,
		Email:    email,
		Name:     "Seeded",
		Password: hashed,
		Role:     role,
		IsActive: active,
	}
}

func TestRegister(t *testing.T) {
	t.Run("anonymous signup defaults to patient", func(t *testing.T) {
		accountRepo, _, uc := newAuthFixture(t, nil)

		response, err := uc.Register(context.Background(), "", &requests.Register{
			Name:     "Jo Hart",
			Email:    "jo@example.com",
			Password: "Sup3r$ecret",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.RolePatient, response.Role)
		assert.Equal(t, constvars.RolePatient, accountRepo.created.Role)
		assert.True(t, accountRepo.created.IsActive)
		assert.NotEqual(t, "Sup3r$ecret", accountRepo.created.Password)
	})

	t.Run("anonymous signup may not claim a staff role", func(t *testing.T) {
		_, _, uc := newAuthFixture(t, nil)

		_, err := uc.Register(context.Background(), "", &requests.Register{
			Name:     "Sneaky",
			Email:    "sneaky@example.com",
			Password: "Sup3r$ecret",
			Role:     constvars.RoleDoctor,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("admin session assigns staff roles", func(t *testing.T) {
		accountRepo, _, uc := newAuthFixture(t, nil)

		response, err := uc.Register(context.Background(), constvars.RoleAdmin, &requests.Register{
			Name:     "Front Desk",
			Email:    "desk@example.com",
			Password: "Sup3r$ecret",
			Role:     constvars.RoleReceptionist,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleReceptionist, response.Role)
		assert.Equal(t, constvars.RoleReceptionist, accountRepo.created.Role)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		accountRepo, _, uc := newAuthFixture(t, nil)
		seedAccount(t, accountRepo, "jo@example.com", "Sup3r$ecret", constvars.RolePatient, true)

		_, err := uc.Register(context.Background(), "", &requests.Register{
			Name:     "Jo Again",
			Email:    "jo@example.com",
			Password: "Sup3r$ecret",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	t.Run("linked patient login carries the patient id", func(t *testing.T) {
		accountRepo, sessionService, uc := newAuthFixture(t, map[string]*models.Patient{
			"jo@example.com": {ID: "7", Email: "jo@example.com"},
		})
		seedAccount(t, accountRepo, "jo@example.com", "Sup3r$ecret", constvars.RolePatient, true)

		response, err := uc.Login(context.Background(), &requests.Login{Email: "jo@example.com", Password: "Sup3r$ecret"})
		require.NoError(t, err)
		assert.Equal(t, constvars.RolePatient, response.Role)
		assert.Equal(t, "7", response.PatientID)
		assert.True(t, response.ProfileLinked)
		assert.NotEmpty(t, response.Token)
		require.Len(t, sessionService.sessions, 1)
		for _, session := range sessionService.sessions {
			assert.Equal(t, "7", session.PatientID)
		}
	})

	t.Run("unlinked patient login succeeds with NotLinked state", func(t *testing.T) {
		accountRepo, _, uc := newAuthFixture(t, nil)
		seedAccount(t, accountRepo, "new@example.com", "Sup3r$ecret", constvars.RolePatient, true)

		response, err := uc.Login(context.Background(), &requests.Login{Email: "new@example.com", Password: "Sup3r$ecret"})
		require.NoError(t, err)
		assert.Empty(t, response.PatientID)
		assert.False(t, response.ProfileLinked)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		accountRepo, _, uc := newAuthFixture(t, nil)
		seedAccount(t, accountRepo, "jo@example.com", "Sup3r$ecret", constvars.RolePatient, true)

		_, err := uc.Login(context.Background(), &requests.Login{Email: "jo@example.com", Password: "WrongPass1$"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("inactive non-admin account is blocked", func(t *testing.T) {
		accountRepo, _, uc := newAuthFixture(t, nil)
		seedAccount(t, accountRepo, "off@example.com", "Sup3r$ecret", constvars.RoleDoctor, false)

		_, err := uc.Login(context.Background(), &requests.Login{Email: "off@example.com", Password: "Sup3r$ecret"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("inactive admin may still log in", func(t *testing.T) {
		accountRepo, _, uc := newAuthFixture(t, nil)
		seedAccount(t, accountRepo, "root@example.com", "Sup3r$ecret", constvars.RoleAdmin, false)

		response, err := uc.Login(context.Background(), &requests.Login{Email: "root@example.com", Password: "Sup3r$ecret"})
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, response.Role)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		_, _, uc := newAuthFixture(t, nil)

		_, err := uc.Login(context.Background(), &requests.Login{Email: "ghost@example.com", Password: "Sup3r$ecret"})
		require.Error(t, err)
	})

	t.Run("attempt quota locks further logins", func(t *testing.T) {
		accountRepo, _, uc := newAuthFixture(t, nil)
		seedAccount(t, accountRepo, "jo@example.com", "Sup3r$ecret", constvars.RolePatient, true)

		for i := 0; i < 3; i++ {
			_, err := uc.Login(context.Background(), &requests.Login{Email: "jo@example.com", Password: "WrongPass1$"})
			require.Error(t, err)
		}

		_, err := uc.Login(context.Background(), &requests.Login{Email: "jo@example.com", Password: "Sup3r$ecret"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	accountRepo, sessionService, uc := newAuthFixture(t, nil)
	seedAccount(t, accountRepo, "jo@example.com", "Sup3r$ecret", constvars.RolePatient, true)

	_, err := uc.Login(context.Background(), &requests.Login{Email: "jo@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)
	require.Len(t, sessionService.sessions, 1)

	var sessionID string
	for id := range sessionService.sessions {
		sessionID = id
	}

	require.NoError(t, uc.Logout(context.Background(), sessionID))
	assert.Empty(t, sessionService.sessions)
}
