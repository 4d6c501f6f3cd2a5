package di

import (
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	sharingcmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/command"
	sharingqry "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/sharing/query"
)

// SharingUseCases はSharing関連のUseCaseを保持します
type SharingUseCases struct {
	// Commands
	SetLink        *sharingcmd.SetLinkCommand
	UnlockLink     *sharingcmd.UnlockLinkCommand
	MarkSharedSeen *sharingcmd.MarkSharedSeenCommand

	// Queries
	ResolveAccess    *sharingqry.ResolveAccessQuery
	GetPrimaryLink   *sharingqry.GetPrimaryLinkQuery
	ListLinks        *sharingqry.ListLinksQuery
	LinkStatus       *sharingqry.LinkStatusQuery
	GetNewItemsCount *sharingqry.GetNewItemsCountQuery
}

// NewSharingUseCases は新しいSharingUseCasesを作成します
func NewSharingUseCases(
	repos *Repositories,
	engine service.AccessEngine,
	gate service.LinkGate,
) *SharingUseCases {
	return &SharingUseCases{
		// Commands
		SetLink:        sharingcmd.NewSetLinkCommand(repos.Locker, engine, repos.LinkRepo),
		UnlockLink:     sharingcmd.NewUnlockLinkCommand(gate),
		MarkSharedSeen: sharingcmd.NewMarkSharedSeenCommand(repos.InboxRepo),

		// Queries
		ResolveAccess:    sharingqry.NewResolveAccessQuery(engine),
		GetPrimaryLink:   sharingqry.NewGetPrimaryLinkQuery(repos.Locker, engine, repos.LinkRepo),
		ListLinks:        sharingqry.NewListLinksQuery(engine, repos.LinkRepo),
		LinkStatus:       sharingqry.NewLinkStatusQuery(gate),
		GetNewItemsCount: sharingqry.NewGetNewItemsCountQuery(repos.InboxRepo),
	}
}
