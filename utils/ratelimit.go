package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Login rate limiting: after maxFailures failed attempts for the same
// email+IP within the window, further attempts are rejected until the
// window expires.
const (
	maxLoginFailures = 5
	loginFailWindow  = 15 * time.Minute
)

// LoginLimiter tracks failed login attempts in Redis. A nil client makes
// every method a no-op, so the limiter can be wired unconditionally.
type LoginLimiter struct {
	client *redis.Client
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

func loginFailKey(email, ip string) string {
	return fmt.Sprintf("login_fail:%s:%s", email, ip)
}

// Blocked reports whether this email+IP pair has exhausted its attempts.
func (l *LoginLimiter) Blocked(ctx context.Context, email, ip string) bool {
	if l == nil || l.client == nil {
		return false
	}
	count, err := l.client.Get(ctx, loginFailKey(email, ip)).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginFailures
}

// RecordFailure counts one failed attempt. The first failure in a window
// starts the expiry clock.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email, ip string) {
	if l == nil || l.client == nil {
		return
	}
	key := loginFailKey(email, ip)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		l.client.Expire(ctx, key, loginFailWindow)
	}
}

// Reset clears the failure count after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email, ip string) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, loginFailKey(email, ip))
}
