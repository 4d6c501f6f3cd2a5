package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/logger"
)

// Job は定期実行ジョブを定義します
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Manager はバックグラウンドワーカーを管理します
type Manager struct {
	jobs   []Job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager は新しいWorker Managerを作成します
func NewManager() *Manager {
	return &Manager{}
}

// Register は定期実行ジョブを登録します
func (m *Manager) Register(job Job) {
	m.jobs = append(m.jobs, job)
}

// Jobs は登録済みジョブ名を返します
func (m *Manager) Jobs() []string {
	names := make([]string, 0, len(m.jobs))
	for _, job := range m.jobs {
		names = append(names, job.Name)
	}
	return names
}

// Start は全ジョブのワーカーを開始します
// ctx がキャンセルされるか Shutdown が呼ばれると停止します
func (m *Manager) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	for _, job := range m.jobs {
		m.wg.Add(1)
		go m.runJob(ctx, job)
	}
	logger.Info(ctx, "worker manager started", "jobs", len(m.jobs))
}

// runJob は単一ジョブのワーカーループを実行します
func (m *Manager) runJob(ctx context.Context, job Job) {
	defer m.wg.Done()

	logger.Debug(ctx, "worker started", "job", job.Name, "interval", job.Interval)

	// 最初の実行を即座に行う
	m.runOnce(ctx, job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug(ctx, "worker stopping", "job", job.Name)
			return
		case <-ticker.C:
			m.runOnce(ctx, job)
		}
	}
}

// runOnce はジョブを一回実行します
// ジョブ内の panic はワーカーを止めずにエラーとして記録します
func (m *Manager) runOnce(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "worker job panicked", "job", job.Name, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Fn(ctx); err != nil {
		logger.Error(ctx, "worker job failed", "job", job.Name, "error", err)
	}
}

// Shutdown はすべてのワーカーを停止し、終了を待ちます
func (m *Manager) Shutdown(timeout time.Duration) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("worker manager shutdown timed out after %s", timeout)
	}
}
