package utils

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
)

func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func GetSessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session
}
