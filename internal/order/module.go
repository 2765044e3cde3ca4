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

package order

import (
	"time"

	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/event"
	"github.com/ecodeclub/checkout/internal/order/internal/job"
	"github.com/ecodeclub/checkout/internal/order/internal/mailer"
	"github.com/ecodeclub/checkout/internal/order/internal/service"
	"github.com/ecodeclub/checkout/internal/order/internal/web"
)

type (
	Service              = service.Service
	CreateOrderReq       = service.CreateOrderReq
	ItemsError           = service.ItemsError
	ItemViolation        = service.ItemViolation
	CouponError          = service.CouponError
	Order                = domain.Order
	OrderItem            = domain.OrderItem
	OrderTotals          = domain.OrderTotals
	Status               = domain.Status
	PaymentMethod        = domain.PaymentMethod
	PaymentStatus        = domain.PaymentStatus
	OrderEvent           = event.OrderEvent
	Handler              = web.Handler
	AdminHandler         = web.AdminHandler
	CancelStaleOrdersJob = job.CancelStaleOrdersJob
	PaymentConsumer      = event.PaymentConsumer
)

const (
	StatusPending    = domain.StatusPending
	StatusConfirmed  = domain.StatusConfirmed
	StatusProcessing = domain.StatusProcessing
	StatusDelivered  = domain.StatusDelivered
	StatusCancelled  = domain.StatusCancelled

	PaymentStatusPending = domain.PaymentStatusPending
	PaymentStatusPaid    = domain.PaymentStatusPaid
	PaymentStatusFailed  = domain.PaymentStatusFailed

	PaymentMethodCOD    = domain.PaymentMethodCOD
	PaymentMethodOnline = domain.PaymentMethodOnline

	OrderEventName         = event.OrderEventName
	NameOrderCreated       = event.NameOrderCreated
	NameOrderStatusChanged = event.NameOrderStatusChanged
	AudienceUser           = event.AudienceUser
	AudienceAdmin          = event.AudienceAdmin
)

var (
	ErrInvalidAddress       = service.ErrInvalidAddress
	ErrEmptyCartSelection   = service.ErrEmptyCartSelection
	ErrInvalidPaymentMethod = service.ErrInvalidPaymentMethod
	ErrInvalidTransition    = service.ErrInvalidTransition
	ErrPersistence          = service.ErrPersistence
	ErrOrderNotFound        = service.ErrOrderNotFound
)

type Config struct {
	Mail mailer.Config `yaml:"mail"`
	// PendingTimeout 超过这个时间还没确认的订单会被自动取消
	PendingTimeout time.Duration `yaml:"pendingTimeout"`
	// BatchSize 自动取消时每批处理的订单数
	BatchSize int `yaml:"batchSize"`
}

type Module struct {
	Svc                  Service
	Hdl                  *Handler
	AdminHdl             *AdminHandler
	CancelStaleOrdersJob *CancelStaleOrdersJob
	PaymentConsumer      *PaymentConsumer
}
