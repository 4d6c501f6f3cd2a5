package di

import (
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/worker"
)

// NewWorkerManager はバックグラウンドジョブを登録したManagerを作成します
func NewWorkerManager(c *Container) *worker.Manager {
	mgr := worker.NewManager()

	var recorder worker.PurgeRecorder
	if c.Metrics != nil {
		recorder = c.Metrics
	}
	mgr.Register(worker.NewExpiredLinkPurgeJob(c.Repos.LinkRepo, recorder, worker.ExpiredLinkPurgeJobConfig{
		Interval:  c.config.Sharing.PurgeInterval,
		Retention: c.config.Sharing.ExpiredLinkRetention,
	}))

	checkers := make([]worker.Checker, 0, 2)
	for _, hc := range c.HealthCheckers() {
		checkers = append(checkers, hc)
	}
	if len(checkers) > 0 {
		mgr.Register(worker.NewHealthCheckJob(30*time.Second, checkers...))
	}

	return mgr
}
