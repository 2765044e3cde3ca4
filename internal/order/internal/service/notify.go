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

package service

import (
	"context"
	"time"

	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/event"
	"github.com/gotomicro/ego/core/elog"
)

const notifyTimeout = 5 * time.Second

// afterCreated 通知和邮件失败只记录日志，订单已经提交
func (s *service) afterCreated(ctx context.Context, order domain.Order) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	s.notify(ctx, s.orderEvent(event.NameOrderCreated, event.AudienceAdmin, order, ""))
	s.sendMail(ctx, order)
}

func (s *service) afterTransition(ctx context.Context, order domain.Order, from domain.Status) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	s.notify(ctx, s.orderEvent(event.NameOrderStatusChanged, event.AudienceUser, order, from))
	s.notify(ctx, s.orderEvent(event.NameOrderStatusChanged, event.AudienceAdmin, order, from))
	switch order.Status {
	case domain.StatusConfirmed, domain.StatusProcessing, domain.StatusDelivered, domain.StatusCancelled:
		s.sendMail(ctx, order)
	}
}

func (s *service) orderEvent(name string, audience event.Audience, order domain.Order, from domain.Status) event.OrderEvent {
	return event.OrderEvent{
		Name:        name,
		Audience:    audience,
		OrderID:     order.ID,
		OrderSN:     order.SN,
		UID:         order.UID,
		From:        string(from),
		Status:      string(order.Status),
		TotalAmount: order.Totals.Total(),
		OccurredAt:  s.now().UnixMilli(),
	}
}

func (s *service) notify(ctx context.Context, evt event.OrderEvent) {
	if err := s.notifier.Notify(ctx, evt); err != nil {
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("name", evt.Name),
			elog.String("audience", string(evt.Audience)),
			elog.String("sn", evt.OrderSN))
	}
}

func (s *service) sendMail(ctx context.Context, order domain.Order) {
	if order.Address.Email == "" {
		return
	}
	if err := s.mailer.Send(ctx, order); err != nil {
		s.logger.Error("发送订单邮件失败",
			elog.FieldErr(err),
			elog.String("sn", order.SN),
			elog.String("status", string(order.Status)))
	}
}
