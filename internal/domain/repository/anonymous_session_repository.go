package repository

import (
	"context"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
)

// AnonymousSessionRepository はパスワード解除済み匿名セッションのリポジトリインターフェース
type AnonymousSessionRepository interface {
	Save(ctx context.Context, session *entity.AnonymousSession) error
	FindByKey(ctx context.Context, key string) (*entity.AnonymousSession, error)
	Delete(ctx context.Context, key string) error
}
