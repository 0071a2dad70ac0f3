package utils

import (
	"fmt"
	"medicore-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateReceiptObjectName(paymentID string) string {
	return fmt.Sprintf("receipts/%s-%s.json", paymentID, uuid.NewString())
}
