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

const OrderEventName = "order_events"

const (
	NameOrderCreated       = "order.created"
	NameOrderStatusChanged = "order.status_changed"
)

type Audience string

const (
	AudienceUser  Audience = "user"
	AudienceAdmin Audience = "admin"
)

// OrderEvent 通知网关使用的订单事件，投递失败不影响订单本身
type OrderEvent struct {
	Name        string   `json:"name"`
	Audience    Audience `json:"audience"`
	OrderID     int64    `json:"orderId"`
	OrderSN     string   `json:"orderSn"`
	UID         int64    `json:"uid"`
	From        string   `json:"from,omitempty"`
	Status      string   `json:"status"`
	TotalAmount int64    `json:"totalAmount"`
	OccurredAt  int64    `json:"occurredAt"`
}
