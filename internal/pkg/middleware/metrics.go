// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder web 和 admin 两个 server 共用，用 server 标签区分
type MetricsBuilder struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	inFlight *prometheus.GaugeVec
}

func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	const namespace = "checkout"
	labels := []string{"server", "method", "path", "status_code"}
	b := &MetricsBuilder{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, labels),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP 请求数",
		}, labels),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "正在处理的 HTTP 请求数",
		}, []string{"server"}),
	}
	reg.MustRegister(b.duration, b.requests, b.inFlight)
	return b
}

func (b *MetricsBuilder) Build(server string) gin.HandlerFunc {
	inFlight := b.inFlight.WithLabelValues(server)
	return func(ctx *gin.Context) {
		start := time.Now()
		inFlight.Inc()
		defer inFlight.Dec()

		ctx.Next()

		// 没有匹配到路由的请求统一记成 unknown，避免标签基数失控
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		lvs := []string{server, ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		b.duration.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		b.requests.WithLabelValues(lvs...).Inc()
	}
}
