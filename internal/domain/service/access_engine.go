package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// 解決結果の分類（メトリクスのラベル値）
const (
	OutcomeGranted          = "granted"
	OutcomePasswordRequired = "password_required"
	OutcomeForbidden        = "forbidden"
	OutcomeNotFound         = "not_found"
	OutcomeError            = "error"
)

// ResolutionRecorder はアクセス解決の結果を記録します
type ResolutionRecorder interface {
	ObserveResolution(channel, outcome string, duration time.Duration)
}

// AccessEngine はエントリと資格情報の組から実効アクセスを決定するドメインサービス
// 登録情報を読むだけで変更しないため、並行に呼び出して構いません
type AccessEngine interface {
	// Resolve は資格情報に応じて一つの経路（リンクまたはプリンシパル）で実効アクセスを解決します
	Resolve(ctx context.Context, entryID uuid.UUID, cred authz.Credential) (*authz.EffectiveAccess, error)

	// PrincipalLevel は認証済みユーザーのチェーン上での実効レベルを返します
	// 所有・直接共有・ルームメンバーシップの最大値です
	PrincipalLevel(ctx context.Context, chain entity.EntryChain, userID uuid.UUID) (authz.AccessLevel, error)

	// AuthorizeManage はユーザーがエントリの共有設定を管理できるかを検証し、チェーンを返します
	// 参照すらできない場合は NotFound、参照のみ可能な場合は Forbidden を返します
	AuthorizeManage(ctx context.Context, entryID, userID uuid.UUID) (entity.EntryChain, error)
}

// AccessEngineOption はAccessEngineの任意設定です
type AccessEngineOption func(*accessEngineImpl)

// WithClock は現在時刻の取得元を差し替えます
func WithClock(now func() time.Time) AccessEngineOption {
	return func(e *accessEngineImpl) {
		e.now = now
	}
}

// WithResolutionRecorder は解決結果の記録先を設定します
func WithResolutionRecorder(recorder ResolutionRecorder) AccessEngineOption {
	return func(e *accessEngineImpl) {
		if recorder != nil {
			e.recorder = recorder
		}
	}
}

// accessEngineImpl はAccessEngineの実装
type accessEngineImpl struct {
	hierarchy      EntryHierarchyService
	grantResolver  ShareGrantResolver
	linkRepo       repository.ShareLinkRepository
	membershipRepo repository.MembershipRepository
	sessionRepo    repository.AnonymousSessionRepository
	recorder       ResolutionRecorder
	now            func() time.Time
}

// NewAccessEngine は新しいAccessEngineを作成します
func NewAccessEngine(
	hierarchy EntryHierarchyService,
	grantResolver ShareGrantResolver,
	linkRepo repository.ShareLinkRepository,
	membershipRepo repository.MembershipRepository,
	sessionRepo repository.AnonymousSessionRepository,
	opts ...AccessEngineOption,
) AccessEngine {
	e := &accessEngineImpl{
		hierarchy:      hierarchy,
		grantResolver:  grantResolver,
		linkRepo:       linkRepo,
		membershipRepo: membershipRepo,
		sessionRepo:    sessionRepo,
		recorder:       nopRecorder{},
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve は実効アクセスを解決します
func (e *accessEngineImpl) Resolve(ctx context.Context, entryID uuid.UUID, cred authz.Credential) (*authz.EffectiveAccess, error) {
	start := time.Now()
	channel := "none"

	access, err := func() (*authz.EffectiveAccess, error) {
		chain, err := e.hierarchy.Chain(ctx, entryID)
		if err != nil {
			return nil, err
		}

		if cred.HasLinkToken() {
			channel = authz.ChannelLink.String()
			access, matched, err := e.resolveLink(ctx, chain, cred)
			if err != nil || matched {
				return access, err
			}
			// 有効なリンクが見つからず、認証済みユーザーもいない場合は拒否
			if !cred.IsAuthenticated() {
				return nil, apperror.NewForbiddenError("link does not grant access to this entry")
			}
		}

		if cred.IsAuthenticated() {
			channel = authz.ChannelPrincipal.String()
			return e.resolvePrincipal(ctx, chain, *cred.UserID)
		}

		return nil, apperror.NewForbiddenError("no credential presented")
	}()

	outcome := outcomeOf(err)
	e.recorder.ObserveResolution(channel, outcome, time.Since(start))

	if err != nil {
		logger.Debug(ctx, "access resolution denied", "entry_id", entryID, "channel", channel, "outcome", outcome)
		return nil, err
	}
	logger.Debug(ctx, "access resolved", "entry_id", entryID, "channel", channel, "level", access.Level.String())
	return access, nil
}

// resolveLink はリンク経路で解決します
// matched が false の場合、チェーン上に有効なエントリポイントが見つからなかったことを示します
func (e *accessEngineImpl) resolveLink(ctx context.Context, chain entity.EntryChain, cred authz.Credential) (*authz.EffectiveAccess, bool, error) {
	now := e.now()

	// 1. エントリポイントの特定
	entryPoint, expired, err := e.findEntryPoint(ctx, chain, cred.LinkToken, now)
	if err != nil {
		return nil, false, err
	}
	if entryPoint == nil {
		// 2. 期限切れのリンクは存在しないものとして扱い、認証済みならプリンシパル経路に回す
		if expired && !cred.IsAuthenticated() {
			return nil, false, apperror.NewForbiddenError("link expired")
		}
		return nil, false, nil
	}

	// 3. パスワードゲート（レベル計算より先に判定）
	if entryPoint.RequiresPassword() {
		ok, err := e.hasValidSession(ctx, entryPoint, cred.SessionKey, now)
		if err != nil {
			return nil, true, err
		}
		if !ok {
			return nil, true, apperror.NewPasswordRequiredError()
		}
	}

	// 4. 内部限定リンクは匿名では使えない
	if entryPoint.Internal && !cred.IsAuthenticated() {
		return nil, true, apperror.NewForbiddenError("link is available to internal users only")
	}

	// 5. レベルは提示されたエントリポイントのもの
	level := entryPoint.Access

	// 6. ダウンロード禁止はエントリポイントか対象自身のリンクのいずれかで true なら禁止
	denyDownload := entryPoint.DenyDownload
	target := chain.Target()
	if !denyDownload && entryPoint.EntryID != target.ID {
		own, err := e.linkRepo.FindPrimaryByEntryID(ctx, target.ID)
		if err != nil && !apperror.IsNotFound(err) {
			return nil, true, err
		}
		if own != nil && own.IsLive(now) && own.DenyDownload {
			denyDownload = true
		}
	}

	linkID := entryPoint.ID
	return authz.NewEffectiveAccess(target.ID, level, !denyDownload, authz.ChannelLink, &linkID), true, nil
}

// findEntryPoint はトークンに一致する有効なリンクをチェーン上から探します
// トークンはリンクごとに一意なので、一致したリンクがチェーン上にあればそれがエントリポイントです
func (e *accessEngineImpl) findEntryPoint(ctx context.Context, chain entity.EntryChain, rawToken string, now time.Time) (link *entity.ShareLink, expired bool, err error) {
	token, err := valueobject.ReconstructShareToken(rawToken)
	if err != nil {
		return nil, false, nil
	}

	link, err = e.linkRepo.FindByToken(ctx, token)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if !chain.Contains(link.EntryID) {
		return nil, false, nil
	}
	if !link.IsLive(now) {
		return nil, true, nil
	}
	return link, false, nil
}

// hasValidSession は匿名セッションがリンクの現在のパスワードに対して有効かを判定します
func (e *accessEngineImpl) hasValidSession(ctx context.Context, link *entity.ShareLink, sessionKey string, now time.Time) (bool, error) {
	if sessionKey == "" {
		return false, nil
	}
	session, err := e.sessionRepo.FindByKey(ctx, sessionKey)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return session.IsValidFor(link, now), nil
}

// resolvePrincipal はプリンシパル経路で解決します
func (e *accessEngineImpl) resolvePrincipal(ctx context.Context, chain entity.EntryChain, userID uuid.UUID) (*authz.EffectiveAccess, error) {
	level, err := e.PrincipalLevel(ctx, chain, userID)
	if err != nil {
		return nil, err
	}
	if level.IsNone() {
		return nil, apperror.NewForbiddenError("you do not have access to this entry")
	}
	return authz.NewEffectiveAccess(chain.Target().ID, level, true, authz.ChannelPrincipal, nil), nil
}

// PrincipalLevel は所有・直接共有・ルームメンバーシップの最大値を返します
func (e *accessEngineImpl) PrincipalLevel(ctx context.Context, chain entity.EntryChain, userID uuid.UUID) (authz.AccessLevel, error) {
	for _, entry := range chain {
		if entry.IsOwnedBy(userID) {
			return authz.AccessEditing, nil
		}
	}

	level, err := e.grantResolver.ChainLevel(ctx, chain, userID)
	if err != nil {
		return authz.AccessNone, err
	}

	if room := chain.Room(); room != nil {
		memberLevel, err := e.membershipRepo.FindRoomMemberLevel(ctx, room.ID, userID)
		if err != nil {
			return authz.AccessNone, err
		}
		level = authz.MaxAccessLevel(level, memberLevel)
	}

	return level, nil
}

// AuthorizeManage は共有設定の管理権限を検証します
func (e *accessEngineImpl) AuthorizeManage(ctx context.Context, entryID, userID uuid.UUID) (entity.EntryChain, error) {
	chain, err := e.hierarchy.Chain(ctx, entryID)
	if err != nil {
		return nil, err
	}

	level, err := e.PrincipalLevel(ctx, chain, userID)
	if err != nil {
		return nil, err
	}
	if level.IsNone() {
		return nil, apperror.NewNotFoundError("entry")
	}
	if !level.Capabilities().Share {
		return nil, apperror.NewForbiddenError("you do not have permission to manage sharing of this entry")
	}

	return chain, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return OutcomeGranted
	}
	code, ok := apperror.CodeOf(err)
	if !ok {
		return OutcomeError
	}
	switch code {
	case apperror.CodePasswordRequired:
		return OutcomePasswordRequired
	case apperror.CodeForbidden:
		return OutcomeForbidden
	case apperror.CodeNotFound:
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveResolution(string, string, time.Duration) {}
