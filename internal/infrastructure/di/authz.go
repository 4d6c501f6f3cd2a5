package di

import (
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	authzcmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/authz/command"
	authzqry "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/authz/query"
)

// AuthzUseCases は直接共有とメンバーシップ関連のUseCaseを保持します
type AuthzUseCases struct {
	// Commands
	SetGrant       *authzcmd.SetGrantCommand
	SetRoomMember  *authzcmd.SetRoomMemberCommand
	CreateGroup    *authzcmd.CreateGroupCommand
	AddGroupMember *authzcmd.AddGroupMemberCommand

	// Queries
	ListGrants *authzqry.ListGrantsQuery
}

// NewAuthzUseCases は新しいAuthzUseCasesを作成します
func NewAuthzUseCases(repos *Repositories, engine service.AccessEngine) *AuthzUseCases {
	return &AuthzUseCases{
		// Commands
		SetGrant: authzcmd.NewSetGrantCommand(
			repos.Locker,
			engine,
			repos.GrantRepo,
			repos.MembershipRepo,
			repos.InboxRepo,
		),
		SetRoomMember:  authzcmd.NewSetRoomMemberCommand(repos.Locker, engine, repos.MembershipRepo),
		CreateGroup:    authzcmd.NewCreateGroupCommand(repos.MembershipRepo),
		AddGroupMember: authzcmd.NewAddGroupMemberCommand(repos.MembershipRepo),

		// Queries
		ListGrants: authzqry.NewListGrantsQuery(repos.GrantRepo, engine),
	}
}
