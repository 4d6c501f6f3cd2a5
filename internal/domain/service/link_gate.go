package service

import (
	"context"
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

// LinkGate はパスワード保護リンクの解除状態を管理するドメインサービス
type LinkGate interface {
	// Lookup はトークンから有効なリンクを取得します
	// 未知のトークンは NotFound、期限切れは Forbidden です
	Lookup(ctx context.Context, rawToken string) (*entity.ShareLink, error)

	// Status は匿名セッションを踏まえたリンクの状態を返します
	// 有効なセッションがあればパスワードを再検証しません
	Status(ctx context.Context, link *entity.ShareLink, sessionKey string) (valueobject.ShareLinkStatus, error)

	// Unlock はパスワードを検証して匿名セッションを発行します
	// パスワードのないリンクでは nil を返します
	Unlock(ctx context.Context, link *entity.ShareLink, password string) (*entity.AnonymousSession, error)
}

// LinkGateOption はLinkGateの任意設定です
type LinkGateOption func(*linkGateImpl)

// WithGateClock は現在時刻の取得元を差し替えます
func WithGateClock(now func() time.Time) LinkGateOption {
	return func(g *linkGateImpl) {
		g.now = now
	}
}

// WithSessionTTL は匿名セッションの有効期間を設定します
func WithSessionTTL(ttl time.Duration) LinkGateOption {
	return func(g *linkGateImpl) {
		if ttl > 0 {
			g.sessionTTL = ttl
		}
	}
}

// linkGateImpl はLinkGateの実装
type linkGateImpl struct {
	linkRepo    repository.ShareLinkRepository
	sessionRepo repository.AnonymousSessionRepository
	sessionTTL  time.Duration
	now         func() time.Time
}

// NewLinkGate は新しいLinkGateを作成します
func NewLinkGate(
	linkRepo repository.ShareLinkRepository,
	sessionRepo repository.AnonymousSessionRepository,
	opts ...LinkGateOption,
) LinkGate {
	g := &linkGateImpl{
		linkRepo:    linkRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  entity.DefaultAnonymousSessionTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Lookup はトークンからリンクを取得します
func (g *linkGateImpl) Lookup(ctx context.Context, rawToken string) (*entity.ShareLink, error) {
	token, err := valueobject.ReconstructShareToken(rawToken)
	if err != nil {
		return nil, apperror.NewNotFoundError("share link")
	}

	link, err := g.linkRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !link.IsLive(g.now()) {
		return nil, apperror.NewForbiddenError("link expired")
	}
	return link, nil
}

// Status はリンクの状態を返します
func (g *linkGateImpl) Status(ctx context.Context, link *entity.ShareLink, sessionKey string) (valueobject.ShareLinkStatus, error) {
	if !link.RequiresPassword() {
		return valueobject.ShareLinkStatusOk, nil
	}
	if sessionKey == "" {
		return valueobject.ShareLinkStatusRequiredPassword, nil
	}

	session, err := g.sessionRepo.FindByKey(ctx, sessionKey)
	if err != nil {
		if apperror.IsNotFound(err) {
			return valueobject.ShareLinkStatusRequiredPassword, nil
		}
		return "", err
	}
	if !session.IsValidFor(link, g.now()) {
		return valueobject.ShareLinkStatusRequiredPassword, nil
	}
	return valueobject.ShareLinkStatusOk, nil
}

// Unlock はパスワードを検証して匿名セッションを発行します
func (g *linkGateImpl) Unlock(ctx context.Context, link *entity.ShareLink, password string) (*entity.AnonymousSession, error) {
	if !link.RequiresPassword() {
		return nil, nil
	}
	if err := link.ValidatePassword(password); err != nil {
		return nil, apperror.NewInvalidPasswordError()
	}

	session, err := entity.NewAnonymousSession(link, g.sessionTTL, g.now())
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if err := g.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
