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

package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	OrderSN string `json:"orderSN"`
	Status  string `json:"status"`
}

func TestKeyedProducer_Produce(t *testing.T) {
	q := memory.NewMQ()
	const topic = "order_events"
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	consumer, err := q.Consumer(topic, "test")
	require.NoError(t, err)

	p, err := NewKeyedProducer[testEvent](NewTraceMQ(q), topic, func(evt testEvent) string {
		return evt.OrderSN
	})
	require.NoError(t, err)
	evt := testEvent{OrderSN: "0000012024010100000001", Status: "CONFIRMED"}
	require.NoError(t, p.Produce(context.Background(), evt))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(evt.OrderSN), msg.Key)
	var got testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, evt, got)
}
