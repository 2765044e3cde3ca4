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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/checkout/internal/order"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderEventConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name        string
		evt         order.OrderEvent
		status      int
		wantContent string
		wantErr     bool
	}{
		{
			name: "新订单通知管理员",
			evt: order.OrderEvent{
				Name: order.NameOrderCreated, Audience: order.AudienceAdmin,
				OrderSN: "0000092024030500001005", UID: 9, Status: "PENDING", TotalAmount: 230000,
			},
			status:      http.StatusOK,
			wantContent: "新订单 0000092024030500001005，用户 9，金额 230000",
		},
		{
			name: "状态变更通知用户",
			evt: order.OrderEvent{
				Name: order.NameOrderStatusChanged, Audience: order.AudienceUser,
				OrderSN: "0000092024030500001005", UID: 9, From: "PENDING", Status: "CONFIRMED",
			},
			status:      http.StatusOK,
			wantContent: "订单 0000092024030500001005 状态变更：待确认 -> 已确认",
		},
		{
			name: "推送地址返回错误",
			evt: order.OrderEvent{
				Name: order.NameOrderStatusChanged, Audience: order.AudienceAdmin,
				OrderSN: "0000092024030500001005", From: "CONFIRMED", Status: "CANCELLED",
			},
			status:      http.StatusInternalServerError,
			wantContent: "订单 0000092024030500001005 状态变更：已确认 -> 已取消",
			wantErr:     true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			received := make(chan RobotMessage, 1)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var msg RobotMessage
				_ = json.NewDecoder(r.Body).Decode(&msg)
				received <- msg
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, order.OrderEventName, 1))
			c, err := NewOrderEventConsumer(q, Config{Webhooks: map[string]string{
				"admin": server.URL,
				"user":  server.URL,
			}})
			require.NoError(t, err)
			produce(t, ctx, q, tc.evt)

			err = c.Consume(ctx)
			assert.Equal(t, tc.wantErr, err != nil)
			msg := <-received
			assert.Equal(t, "text", msg.MsgType)
			assert.Equal(t, tc.wantContent, msg.Text.Content)
		})
	}
}

func TestOrderEventConsumer_ConsumeWithoutWebhook(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, order.OrderEventName, 1))
	c, err := NewOrderEventConsumer(q, Config{})
	require.NoError(t, err)
	produce(t, ctx, q, order.OrderEvent{Name: order.NameOrderCreated, Audience: order.AudienceAdmin})
	assert.NoError(t, c.Consume(ctx))
}

func produce(t *testing.T, ctx context.Context, q mq.MQ, evt order.OrderEvent) {
	t.Helper()
	producer, err := q.Producer(order.OrderEventName)
	require.NoError(t, err)
	val, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(ctx, &mq.Message{Value: val})
	require.NoError(t, err)
}
