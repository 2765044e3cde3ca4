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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/checkout/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CancelStaleOrdersJob 取消长时间没有被确认的订单。
// 待确认的订单没有占用库存，所以这里只是推进状态
type CancelStaleOrdersJob struct {
	svc     service.Service
	limit   int
	timeout time.Duration
	now     func() time.Time
	logger  *elog.Component
}

func NewCancelStaleOrdersJob(svc service.Service, limit int, timeout time.Duration) *CancelStaleOrdersJob {
	return &CancelStaleOrdersJob{
		svc:     svc,
		limit:   limit,
		timeout: timeout,
		now:     time.Now,
		logger:  elog.DefaultLogger,
	}
}

func (c *CancelStaleOrdersJob) Name() string {
	return "CancelStaleOrdersJob"
}

func (c *CancelStaleOrdersJob) Run(ctx context.Context) error {
	// 冗余10秒
	before := c.now().Add(-c.timeout - 10*time.Second)
	total := 0
	for {
		cnt, err := c.svc.CancelStalePendingOrders(ctx, before, c.limit)
		if err != nil {
			return fmt.Errorf("取消超时订单失败: %w", err)
		}
		total += cnt
		// 不足一批说明处理完了，被并发确认的订单也不会计入
		if cnt < c.limit {
			break
		}
	}
	c.logger.Info("取消超时订单", elog.Int("count", total))
	return nil
}
