package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitResult はレート制限チェックの結果を表します
type RateLimitResult struct {
	Allowed   bool      // リクエストが許可されたか
	Remaining int       // 残りリクエスト数
	ResetAt   time.Time // リセット時刻
	RetryAt   time.Time // リトライ可能時刻（拒否された場合）
}

// RateLimitConfig はレート制限の設定を定義します
type RateLimitConfig struct {
	Type     string        // 制限タイプ
	Requests int           // ウィンドウ内の最大リクエスト数
	Window   time.Duration // ウィンドウサイズ
}

// RateLimitLinkPassword はリンクパスワード試行の制限です
var RateLimitLinkPassword = RateLimitConfig{
	Type:     "share:password",
	Requests: 10,
	Window:   time.Minute,
}

// RateLimiter は固定ウィンドウ方式のレート制限を提供します
type RateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// NewRateLimiter は新しいRateLimiterを作成します
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

var fixedWindowScript = redis.NewScript(`
    local key = KEYS[1]
    local limit = tonumber(ARGV[1])
    local window = tonumber(ARGV[2])

    local current = redis.call('INCR', key)
    if current == 1 then
        redis.call('EXPIRE', key, window)
    end

    if current <= limit then
        return {1, limit - current}
    else
        local ttl = redis.call('TTL', key)
        return {0, ttl}
    end
`)

// Allow はリクエストが許可されるかチェックします
func (r *RateLimiter) Allow(ctx context.Context, identifier string, config RateLimitConfig) (*RateLimitResult, error) {
	now := r.now()
	windowStart := now.Truncate(config.Window)
	key := RateLimitKey(config.Type, identifier, windowStart.Unix())

	result, err := fixedWindowScript.Run(ctx, r.client, []string{key}, config.Requests, int(config.Window.Seconds())).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}

	resetAt := windowStart.Add(config.Window)
	if result[0] == 1 {
		return &RateLimitResult{
			Allowed:   true,
			Remaining: int(result[1]),
			ResetAt:   resetAt,
		}, nil
	}

	return &RateLimitResult{
		Allowed: false,
		ResetAt: resetAt,
		RetryAt: now.Add(time.Duration(result[1]) * time.Second),
	}, nil
}
