package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
)

// ShareGrantResolver は直接共有からユーザーの実効レベルを求めるドメインサービス
// 解決の優先順位:
// 1. ユーザー本人への付与（存在すればそれが確定値）
// 2. 所属グループへの付与の最大値
// 3. いずれもなければ None
type ShareGrantResolver interface {
	// EffectiveLevel は単一エントリに対する実効レベルを返します
	EffectiveLevel(ctx context.Context, entryID, userID uuid.UUID) (authz.AccessLevel, error)

	// ChainLevel はチェーン上の各エントリの実効レベルの最大値を返します
	ChainLevel(ctx context.Context, chain entity.EntryChain, userID uuid.UUID) (authz.AccessLevel, error)
}

// shareGrantResolverImpl はShareGrantResolverの実装
type shareGrantResolverImpl struct {
	grantRepo      authz.ShareGrantRepository
	membershipRepo repository.MembershipRepository
}

// NewShareGrantResolver は新しいShareGrantResolverを作成します
func NewShareGrantResolver(
	grantRepo authz.ShareGrantRepository,
	membershipRepo repository.MembershipRepository,
) ShareGrantResolver {
	return &shareGrantResolverImpl{
		grantRepo:      grantRepo,
		membershipRepo: membershipRepo,
	}
}

// EffectiveLevel は単一エントリに対する実効レベルを返します
func (r *shareGrantResolverImpl) EffectiveLevel(ctx context.Context, entryID, userID uuid.UUID) (authz.AccessLevel, error) {
	groupIDs, err := r.membershipRepo.FindGroupIDsByUser(ctx, userID)
	if err != nil {
		return authz.AccessNone, err
	}

	grants, err := r.grantRepo.FindByEntryID(ctx, entryID)
	if err != nil {
		return authz.AccessNone, err
	}

	return levelFromGrants(grants, userID, groupIDs), nil
}

// ChainLevel はチェーン上の各エントリの実効レベルの最大値を返します
func (r *shareGrantResolverImpl) ChainLevel(ctx context.Context, chain entity.EntryChain, userID uuid.UUID) (authz.AccessLevel, error) {
	if len(chain) == 0 {
		return authz.AccessNone, nil
	}

	groupIDs, err := r.membershipRepo.FindGroupIDsByUser(ctx, userID)
	if err != nil {
		return authz.AccessNone, err
	}

	grants, err := r.grantRepo.FindByEntryIDs(ctx, chain.IDs())
	if err != nil {
		return authz.AccessNone, err
	}

	byEntry := make(map[uuid.UUID][]*authz.ShareGrant, len(chain))
	for _, g := range grants {
		byEntry[g.EntryID] = append(byEntry[g.EntryID], g)
	}

	level := authz.AccessNone
	for _, e := range chain {
		level = authz.MaxAccessLevel(level, levelFromGrants(byEntry[e.ID], userID, groupIDs))
	}
	return level, nil
}

// levelFromGrants は単一エントリの付与一覧からユーザーのレベルを求めます
func levelFromGrants(grants []*authz.ShareGrant, userID uuid.UUID, groupIDs []uuid.UUID) authz.AccessLevel {
	groupLevel := authz.AccessNone
	for _, g := range grants {
		if g.IsForUser(userID) {
			return g.Access
		}
		if g.IsForAnyGroup(groupIDs) {
			groupLevel = authz.MaxAccessLevel(groupLevel, g.Access)
		}
	}
	return groupLevel
}
