// Package metrics はアクセス解決とHTTPのPrometheusメトリクスを提供します
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/service"
)

// Metrics はアプリケーションのPrometheusメトリクスです
// nil レシーバに対する呼び出しは何もしません
type Metrics struct {
	// ResolutionsTotal は経路と結果ごとのアクセス解決回数
	ResolutionsTotal *prometheus.CounterVec

	// ResolutionDuration は経路ごとのアクセス解決時間
	ResolutionDuration *prometheus.HistogramVec

	// PurgedLinksTotal は期限切れで削除されたリンク数
	PurgedLinksTotal prometheus.Counter

	// HTTPRequestsTotal はルート・メソッド・ステータスごとのリクエスト数
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration はルートごとのリクエスト処理時間
	HTTPRequestDuration *prometheus.HistogramVec
}

// New はメトリクスを作成して登録します
// 登録に失敗した場合は panic します
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "access_resolutions_total",
				Help: "Total access resolutions by channel and outcome",
			},
			[]string{"channel", "outcome"},
		),
		ResolutionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "access_resolution_duration_seconds",
				Help:    "Access resolution duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"channel"},
		),
		PurgedLinksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "share_links_purged_total",
				Help: "Total expired share links removed by the purge job",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}

	reg.MustRegister(
		m.ResolutionsTotal,
		m.ResolutionDuration,
		m.PurgedLinksTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// ObserveResolution はアクセス解決を記録します
func (m *Metrics) ObserveResolution(channel, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(channel, outcome).Inc()
	m.ResolutionDuration.WithLabelValues(channel).Observe(duration.Seconds())
}

// RecordPurge は期限切れリンクの削除件数を記録します
func (m *Metrics) RecordPurge(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.PurgedLinksTotal.Add(float64(n))
}

// RecordHTTPRequest はHTTPリクエストを記録します
func (m *Metrics) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

var _ service.ResolutionRecorder = (*Metrics)(nil)
