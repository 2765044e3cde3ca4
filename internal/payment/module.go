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

package payment

import (
	"github.com/ecodeclub/checkout/internal/payment/internal/domain"
	"github.com/ecodeclub/checkout/internal/payment/internal/event"
	"github.com/ecodeclub/checkout/internal/payment/internal/repository"
	"github.com/ecodeclub/checkout/internal/payment/internal/service"
)

type (
	Payment      = domain.Payment
	Method       = domain.Method
	Status       = domain.Status
	Service      = service.Service
	PaymentEvent = event.PaymentEvent
)

const (
	MethodCOD    = domain.MethodCOD
	MethodOnline = domain.MethodOnline

	StatusPending = domain.StatusPending
	StatusPaid    = domain.StatusPaid
	StatusFailed  = domain.StatusFailed

	PaymentEventName = event.PaymentEventName
)

var (
	ErrPaymentNotFound = repository.ErrPaymentNotFound
	ErrStatusConflict  = service.ErrStatusConflict
)

type Module struct {
	Svc Service
}
