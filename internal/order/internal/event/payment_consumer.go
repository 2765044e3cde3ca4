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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/checkout/internal/payment"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentStatusSyncer 由订单服务实现，避免 event 包依赖 service 包
type PaymentStatusSyncer interface {
	SyncPaymentStatus(ctx context.Context, uid int64, sn string, status string) error
}

// PaymentConsumer 消费支付事件，同步订单上的支付状态
type PaymentConsumer struct {
	svc      PaymentStatusSyncer
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentConsumer(svc PaymentStatusSyncer, q mq.MQ) (*PaymentConsumer, error) {
	const groupID = "order"
	consumer, err := q.Consumer(payment.PaymentEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费支付事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt payment.PaymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.SyncPaymentStatus(ctx, evt.UID, evt.OrderSN, evt.Status)
	if err != nil {
		c.logger.Warn("同步订单支付状态失败",
			elog.FieldErr(err),
			elog.String("order_sn", evt.OrderSN),
			elog.Int64("uid", evt.UID))
	}
	return err
}
