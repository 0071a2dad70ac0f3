package contracts

import (
	"context"
	"time"
)

type ReceiptStorage interface {
	StoreReceipt(ctx context.Context, objectName string, payload []byte) error
	PresignReceiptURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
