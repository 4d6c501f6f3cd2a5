package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// anonymousSessionData はRedisに保存する匿名セッションデータを表します（内部用）
type anonymousSessionData struct {
	Key           string    `json:"key"`
	LinkID        uuid.UUID `json:"link_id"`
	PasswordStamp string    `json:"password_stamp"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func toAnonymousSessionData(s *entity.AnonymousSession) *anonymousSessionData {
	return &anonymousSessionData{
		Key:           s.Key,
		LinkID:        s.LinkID,
		PasswordStamp: s.PasswordStamp,
		CreatedAt:     s.CreatedAt,
		ExpiresAt:     s.ExpiresAt,
	}
}

func (d *anonymousSessionData) toEntity() *entity.AnonymousSession {
	return &entity.AnonymousSession{
		Key:           d.Key,
		LinkID:        d.LinkID,
		PasswordStamp: d.PasswordStamp,
		CreatedAt:     d.CreatedAt,
		ExpiresAt:     d.ExpiresAt,
	}
}

// AnonymousSessionStore は匿名セッションをTTL付きで保存します
// 期限切れのセッションはRedisが破棄します
type AnonymousSessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewAnonymousSessionStore は新しいAnonymousSessionStoreを作成します
func NewAnonymousSessionStore(client *redis.Client) *AnonymousSessionStore {
	return &AnonymousSessionStore{
		client: client,
		now:    time.Now,
	}
}

// Save はセッションを保存します
func (s *AnonymousSessionStore) Save(ctx context.Context, session *entity.AnonymousSession) error {
	ttl := session.TTL(s.now())
	if ttl <= 0 {
		return apperror.NewValidationError("anonymous session already expired", nil)
	}

	data, err := json.Marshal(toAnonymousSessionData(session))
	if err != nil {
		return fmt.Errorf("failed to marshal anonymous session: %w", err)
	}

	if err := s.client.Set(ctx, AnonymousSessionKey(session.Key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save anonymous session: %w", err)
	}
	return nil
}

// FindByKey はセッションキーでセッションを取得します
func (s *AnonymousSessionStore) FindByKey(ctx context.Context, key string) (*entity.AnonymousSession, error) {
	data, err := s.client.Get(ctx, AnonymousSessionKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperror.NewNotFoundError("anonymous session")
		}
		return nil, fmt.Errorf("failed to get anonymous session: %w", err)
	}

	var d anonymousSessionData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal anonymous session: %w", err)
	}
	return d.toEntity(), nil
}

// Delete はセッションを削除します
func (s *AnonymousSessionStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, AnonymousSessionKey(key)).Err()
}

var _ repository.AnonymousSessionRepository = (*AnonymousSessionStore)(nil)
