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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/checkout/internal/order"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
)

func initCronJobs(reg prometheus.Registerer, oJob *order.CancelStaleOrdersJob) []ecron.Ecron {
	w := newJobWrapper(reg)
	return []ecron.Ecron{
		ecron.Load("cron.cancelStaleOrders").Build(ecron.WithJob(w.wrap(oJob))),
	}
}

type jobWrapper struct {
	duration *prometheus.HistogramVec
}

func newJobWrapper(reg prometheus.Registerer) *jobWrapper {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "checkout",
		Name:      "cron_job_duration_seconds",
		Help:      "定时任务每次运行的耗时",
	}, []string{"job", "result"})
	reg.MustRegister(duration)
	return &jobWrapper{duration: duration}
}

func (w *jobWrapper) wrap(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		err := job.Run(ctx)
		cost := time.Since(start)
		if err != nil {
			w.duration.WithLabelValues(name, "failed").Observe(cost.Seconds())
			elog.DefaultLogger.Error("定时任务执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name),
				elog.FieldCost(cost))
			return err
		}
		w.duration.WithLabelValues(name, "ok").Observe(cost.Seconds())
		elog.DefaultLogger.Debug("定时任务执行完毕",
			elog.String("cronjob", name),
			elog.FieldCost(cost))
		return nil
	}
}
