package worker

import (
	"context"
	"errors"
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/repository"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// PurgeRecorder は削除件数を記録します
type PurgeRecorder interface {
	RecordPurge(n int64)
}

// ExpiredLinkPurgeJobConfig は期限切れリンク削除ジョブの設定です
type ExpiredLinkPurgeJobConfig struct {
	// Interval は実行間隔です
	Interval time.Duration
	// Retention は期限切れ後もリンクを残す期間です
	// 保持中のリンクは匿名アクセスに対して「期限切れ」を返します
	Retention time.Duration
	// Now は現在時刻の取得元です
	Now func() time.Time
}

// NewExpiredLinkPurgeJob は保持期間を過ぎた期限切れリンクを削除するジョブを作成します
func NewExpiredLinkPurgeJob(linkRepo repository.ShareLinkRepository, recorder PurgeRecorder, cfg ExpiredLinkPurgeJobConfig) Job {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Retention < 0 {
		cfg.Retention = 0
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return Job{
		Name:     "expired_link_purge",
		Interval: cfg.Interval,
		Fn: func(ctx context.Context) error {
			before := cfg.Now().Add(-cfg.Retention)
			count, err := linkRepo.DeleteExpiredBefore(ctx, before)
			if err != nil {
				return err
			}
			if recorder != nil {
				recorder.RecordPurge(count)
			}
			if count > 0 {
				logger.Info(ctx, "expired share links purged", "count", count)
			}
			return nil
		},
	}
}

// Checker は依存先の疎通確認を行います
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// NewHealthCheckJob は依存先の疎通を定期確認するジョブを作成します
func NewHealthCheckJob(interval time.Duration, checkers ...Checker) Job {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return Job{
		Name:     "health_check",
		Interval: interval,
		Fn: func(ctx context.Context) error {
			var errs []error
			for _, c := range checkers {
				if err := c.Check(ctx); err != nil {
					logger.Warn(ctx, "health check failed", "dependency", c.Name(), "error", err)
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	}
}
