package di

import (
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
	entrycmd "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/entry/command"
	entryqry "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/usecase/entry/query"
)

// EntryUseCases はエントリ関連のUseCaseを保持します
type EntryUseCases struct {
	// Commands
	CreateEntry *entrycmd.CreateEntryCommand

	// Queries
	GetEntry *entryqry.GetEntryQuery
}

// NewEntryUseCases は新しいEntryUseCasesを作成します
func NewEntryUseCases(
	repos *Repositories,
	hierarchy service.EntryHierarchyService,
	engine service.AccessEngine,
) *EntryUseCases {
	return &EntryUseCases{
		CreateEntry: entrycmd.NewCreateEntryCommand(repos.EntryRepo, hierarchy, engine),
		GetEntry:    entryqry.NewGetEntryQuery(repos.EntryRepo, engine),
	}
}
