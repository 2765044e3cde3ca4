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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/checkout/internal/order"
	"github.com/ecodeclub/mq-api"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

type Text struct {
	Content string `json:"content"`
}

// RobotMessage 群机器人的文本消息格式
type RobotMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

type Config struct {
	// Webhooks 按照 audience 配置推送地址，没有配置的 audience 直接丢弃
	Webhooks map[string]string `yaml:"webhooks"`
	Timeout  time.Duration     `yaml:"timeout"`
}

var statusNames = map[string]string{
	string(order.StatusPending):    "待确认",
	string(order.StatusConfirmed):  "已确认",
	string(order.StatusProcessing): "配送中",
	string(order.StatusDelivered):  "已签收",
	string(order.StatusCancelled):  "已取消",
}

type OrderEventConsumer struct {
	consumer mq.Consumer
	client   *resty.Client
	webhooks map[string]string
	logger   *elog.Component
}

func NewOrderEventConsumer(q mq.MQ, cfg Config) (*OrderEventConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(order.OrderEventName, groupID)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &OrderEventConsumer{
		consumer: consumer,
		client:   resty.New().SetTimeout(timeout),
		webhooks: cfg.Webhooks,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.consumer")),
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费订单事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt order.OrderEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	webhookURL, ok := c.webhooks[string(evt.Audience)]
	if !ok {
		c.logger.Debug("没有配置推送地址", elog.String("audience", string(evt.Audience)))
		return nil
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(RobotMessage{MsgType: "text", Text: Text{Content: content(evt)}}).
		Post(webhookURL)
	if err != nil {
		return fmt.Errorf("推送订单通知失败: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("推送订单通知失败: %s", resp.Status())
	}
	return nil
}

func content(evt order.OrderEvent) string {
	if evt.Name == order.NameOrderCreated {
		return fmt.Sprintf("新订单 %s，用户 %d，金额 %d", evt.OrderSN, evt.UID, evt.TotalAmount)
	}
	return fmt.Sprintf("订单 %s 状态变更：%s -> %s", evt.OrderSN, statusName(evt.From), statusName(evt.Status))
}

func statusName(status string) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return status
}
