package middlewares

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the session behind the bearer token and rejects the
// request when there is none. The session's role is authoritative for the
// whole request; the patient link is lazily refreshed for patient sessions
// created before their profile existed.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticateOptional attaches the session when a valid bearer token is
// present and lets anonymous requests through untouched. Registration uses
// it: anonymous signup is allowed, role assignment needs the admin session.
func (m *Middlewares) AuthenticateOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	session, err := m.SessionService.GetSession(r.Context(), sessionID)
	if err != nil {
		return nil, err
	}

	linkedID, err := m.PatientLinker.EnsureLinked(r.Context(), session.Role, session.Email, session.PatientID)
	if err != nil {
		return nil, err
	}
	if linkedID != session.PatientID {
		session.PatientID = linkedID
		if err := m.SessionService.UpdateSession(r.Context(), session); err != nil {
			m.Log.Warn("middlewares.resolveSession failed to persist refreshed patient link",
				zap.String(constvars.LoggingPatientIDKey, linkedID),
				zap.Error(err),
			)
		}
	}

	return session, nil
}
