package ratelimiter

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// LoginLimiter bounds login attempts per email with a fixed window counter
// stored in Redis, fronted by a process-wide token bucket that smooths
// bursts before they reach Redis at all.
type LoginLimiter struct {
	redis      contracts.RedisRepository
	burst      *rate.Limiter
	maxQuota   int
	windowSecs int
	log        *zap.Logger
}

func NewLoginLimiter(redis contracts.RedisRepository, maxQuota, windowSecs int, log *zap.Logger) *LoginLimiter {
	return &LoginLimiter{
		redis:      redis,
		burst:      rate.NewLimiter(rate.Limit(maxQuota), maxQuota*2),
		maxQuota:   maxQuota,
		windowSecs: windowSecs,
		log:        log,
	}
}

// Allow reports whether another login attempt may proceed for the email.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if !l.burst.Allow() {
		return false, nil
	}

	key := constvars.LoginAttemptKeyPrefix + strings.ToLower(strings.TrimSpace(email))
	count, err := l.redis.Increment(ctx, key)
	if err != nil {
		return false, err
	}
	if count == 1 {
		err = l.redis.Expire(ctx, key, time.Duration(l.windowSecs)*time.Second)
		if err != nil {
			return false, err
		}
	}

	if count > int64(l.maxQuota) {
		l.log.Warn("loginLimiter.Allow quota exceeded",
			zap.String("email", email),
			zap.Int64("attempts", count),
		)
		return false, nil
	}
	return true, nil
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	key := constvars.LoginAttemptKeyPrefix + strings.ToLower(strings.TrimSpace(email))
	return l.redis.Delete(ctx, key)
}
