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

	"github.com/ecodeclub/checkout/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./notifier.go -package=evtmocks -destination=./mocks/notifier.mock.go Notifier
type Notifier interface {
	Notify(ctx context.Context, evt OrderEvent) error
}

// MQNotifier 把事件写入 order_events，由通知模块负责真正的推送
type MQNotifier struct {
	producer mqx.Producer[OrderEvent]
}

func NewMQNotifier(q mq.MQ) (*MQNotifier, error) {
	p, err := mqx.NewKeyedProducer[OrderEvent](q, OrderEventName, func(evt OrderEvent) string {
		return evt.OrderSN
	})
	if err != nil {
		return nil, err
	}
	return &MQNotifier{producer: p}, nil
}

func (n *MQNotifier) Notify(ctx context.Context, evt OrderEvent) error {
	return n.producer.Produce(ctx, evt)
}
