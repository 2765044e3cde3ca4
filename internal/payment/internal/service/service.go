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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/checkout/internal/payment/internal/domain"
	"github.com/ecodeclub/checkout/internal/payment/internal/event"
	"github.com/ecodeclub/checkout/internal/payment/internal/repository"
	"github.com/ecodeclub/checkout/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrInvalidMethod  = errors.New("支付方式非法")
	ErrStatusConflict = errors.New("支付状态已经变更")
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// CreatePayment 创建 PENDING 状态的支付记录，会加入 ctx 中的事务
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	// MarkPaid 货到付款签收时使用，只能从 PENDING 变为 PAID，会加入 ctx 中的事务
	MarkPaid(ctx context.Context, orderID int64, paidAt time.Time) error
	// UpdateStatus 支付回调使用，只能从 PENDING 变为 PAID 或者 FAILED
	UpdateStatus(ctx context.Context, sn string, status domain.Status) error
}

func NewService(repo repository.PaymentRepository, sn *snowflake.Generator, producer event.PaymentEventProducer) Service {
	return &service{
		repo:     repo,
		sn:       sn,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

type service struct {
	repo     repository.PaymentRepository
	sn       *snowflake.Generator
	producer event.PaymentEventProducer
	logger   *elog.Component
}

func (s *service) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	if !pmt.Method.Valid() {
		return domain.Payment{}, fmt.Errorf("%w: %s", ErrInvalidMethod, pmt.Method)
	}
	pmt.SN = s.sn.GenerateSN("PAY")
	pmt.Status = domain.StatusPending
	if pmt.Method == domain.MethodOnline {
		pmt.ExternalRef = shortuuid.New()
	}
	return s.repo.CreatePayment(ctx, pmt)
}

func (s *service) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *service) MarkPaid(ctx context.Context, orderID int64, paidAt time.Time) error {
	ok, err := s.repo.UpdateStatus(ctx, orderID, domain.StatusPending, domain.StatusPaid, paidAt)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: orderID = %d", ErrStatusConflict, orderID)
	}
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, sn string, status domain.Status) error {
	if status != domain.StatusPaid && status != domain.StatusFailed {
		return fmt.Errorf("%w: 目标状态 %s", ErrStatusConflict, status)
	}
	pmt, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return err
	}
	var paidAt time.Time
	if status == domain.StatusPaid {
		paidAt = time.Now()
	}
	ok, err := s.repo.UpdateStatus(ctx, pmt.OrderID, domain.StatusPending, status, paidAt)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: sn = %s", ErrStatusConflict, sn)
	}
	err = s.producer.Produce(ctx, event.PaymentEvent{
		OrderSN: pmt.OrderSN,
		UID:     pmt.UID,
		Status:  string(status),
	})
	if err != nil {
		s.logger.Error("发送支付事件失败",
			elog.FieldErr(err),
			elog.String("sn", sn),
			elog.String("orderSN", pmt.OrderSN))
	}
	return nil
}
