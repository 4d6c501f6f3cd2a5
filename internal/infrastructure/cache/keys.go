package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// KeyPrefix はRedisキーのプレフィックスを定義します
type KeyPrefix string

const (
	PrefixAnonymousSession KeyPrefix = "share:session" // share:session:{session_key}
	PrefixSharedInbox      KeyPrefix = "shared:new"    // shared:new:{user_id}
	PrefixRateLimit        KeyPrefix = "ratelimit"     // ratelimit:{type}:{identifier}:{window}
)

// AnonymousSessionKey は匿名セッションキーを生成します
func AnonymousSessionKey(sessionKey string) string {
	return fmt.Sprintf("%s:%s", PrefixAnonymousSession, sessionKey)
}

// SharedInboxKey は未読共有カウンタのキーを生成します
func SharedInboxKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", PrefixSharedInbox, userID.String())
}

// RateLimitKey はレート制限キーを生成します
func RateLimitKey(limitType, identifier string, windowStart int64) string {
	return fmt.Sprintf("%s:%s:%s:%d", PrefixRateLimit, limitType, identifier, windowStart)
}
