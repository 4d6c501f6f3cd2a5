package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/cache"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/database"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/memory"
	infraRepo "github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/repository"
)

// Repositories はレジストリとロックの実装を保持します
type Repositories struct {
	EntryRepo      repository.EntryRepository
	LinkRepo       repository.ShareLinkRepository
	GrantRepo      authz.ShareGrantRepository
	MembershipRepo repository.MembershipRepository
	SessionRepo    repository.AnonymousSessionRepository
	InboxRepo      repository.SharedInboxRepository
	Locker         repository.EntryLocker
}

// NewMemoryRepositories はプロセス内メモリのレジストリを作成します
func NewMemoryRepositories() *Repositories {
	store := memory.NewStore()
	return &Repositories{
		EntryRepo:      memory.NewEntryRepository(store),
		LinkRepo:       memory.NewShareLinkRepository(store),
		GrantRepo:      memory.NewShareGrantRepository(store),
		MembershipRepo: memory.NewMembershipRepository(store),
		SessionRepo:    memory.NewAnonymousSessionRepository(store),
		InboxRepo:      memory.NewSharedInboxRepository(store),
		Locker:         memory.NewEntryLocker(),
	}
}

// NewPostgresRepositories はPostgreSQLとRedisのレジストリを作成します
// エントリ単位のロックはトランザクションスコープのアドバイザリロックです
func NewPostgresRepositories(txManager *database.TxManager, redisClient *redis.Client) *Repositories {
	return &Repositories{
		EntryRepo:      infraRepo.NewEntryRepository(txManager),
		LinkRepo:       infraRepo.NewShareLinkRepository(txManager),
		GrantRepo:      infraRepo.NewShareGrantRepository(txManager),
		MembershipRepo: infraRepo.NewMembershipRepository(txManager),
		SessionRepo:    cache.NewAnonymousSessionStore(redisClient),
		InboxRepo:      cache.NewSharedInboxStore(redisClient),
		Locker:         txManager,
	}
}
