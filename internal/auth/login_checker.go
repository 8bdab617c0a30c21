package auth

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

// LoginChecker resolves session tokens into user ids.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserID returns the id of the user owning the token, and false when the
// token is unknown or its session is older than the TTL.
func (lc *LoginChecker) UserID(ctx context.Context, token string) (_ string, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "loginChecker.userID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := lc.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	session, err := parseSessionValue(val)
	if err != nil {
		return "", false, err
	}

	if time.Since(session.CreatedAt) > lc.ttl {
		return "", false, nil
	}

	return session.UserID, true, nil
}
