package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/memory"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/worker"
)

type recorder struct{ n int64 }

func (r *recorder) RecordPurge(n int64) { r.n += n }

type checker struct {
	name string
	err  error
}

func (c checker) Name() string                  { return c.name }
func (c checker) Check(_ context.Context) error { return c.err }

func TestManager_RunsJobImmediatelyAndStops(t *testing.T) {
	var runs int32
	m := worker.NewManager()
	m.Register(worker.Job{
		Name:     "counter",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		},
	})
	m.Register(worker.Job{
		Name:     "panics",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			panic("boom")
		},
	})

	m.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"counter", "panics"}, m.Jobs())

	require.NoError(t, m.Shutdown(time.Second))
}

func TestManager_Shutdown_WithoutStart(t *testing.T) {
	assert.NoError(t, worker.NewManager().Shutdown(time.Millisecond))
}

func TestExpiredLinkPurgeJob(t *testing.T) {
	ctx := context.Background()
	links := memory.NewShareLinkRepository(memory.NewStore())
	room, err := entity.NewRoom("Room", valueobject.RoomTypeCustom, uuid.New())
	require.NoError(t, err)

	now := time.Now()
	mk := func(expiresAt *time.Time) *entity.ShareLink {
		link, err := entity.NewShareLink(room, authz.AccessRead, false, room.OwnerID)
		require.NoError(t, err)
		link.ExpiresAt = expiresAt
		require.NoError(t, links.Create(ctx, link))
		return link
	}
	longAgo := now.Add(-48 * time.Hour)
	recently := now.Add(-time.Hour)
	old := mk(&longAgo)
	recent := mk(&recently)
	forever := mk(nil)

	rec := &recorder{}
	job := worker.NewExpiredLinkPurgeJob(links, rec, worker.ExpiredLinkPurgeJobConfig{
		Retention: 24 * time.Hour,
		Now:       func() time.Time { return now },
	})
	require.NoError(t, job.Fn(ctx))

	assert.Equal(t, int64(1), rec.n)
	_, err = links.FindByID(ctx, old.ID)
	assert.Error(t, err)
	_, err = links.FindByID(ctx, recent.ID)
	assert.NoError(t, err)
	_, err = links.FindByID(ctx, forever.ID)
	assert.NoError(t, err)
}

func TestHealthCheckJob_JoinsErrors(t *testing.T) {
	down := errors.New("down")
	job := worker.NewHealthCheckJob(time.Minute, checker{name: "postgres"}, checker{name: "redis", err: down})

	err := job.Fn(context.Background())

	assert.ErrorIs(t, err, down)
}
