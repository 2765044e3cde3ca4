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

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/checkout/internal/payment/internal/domain"
	"github.com/ecodeclub/checkout/internal/payment/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("支付记录不存在")

type PaymentRepository interface {
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	FindBySN(ctx context.Context, sn string) (domain.Payment, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to domain.Status, paidAt time.Time) (bool, error)
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{
		dao: d,
	}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (p *paymentRepository) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	id, err := p.dao.Insert(ctx, p.toEntity(pmt))
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.ID = id
	return pmt, nil
}

func (p *paymentRepository) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	pmt, err := p.dao.FindByOrderID(ctx, orderID)
	return p.handleFind(pmt, err)
}

func (p *paymentRepository) FindBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, err := p.dao.FindBySN(ctx, sn)
	return p.handleFind(pmt, err)
}

func (p *paymentRepository) handleFind(pmt dao.Payment, err error) (domain.Payment, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) UpdateStatus(ctx context.Context, orderID int64, from, to domain.Status, paidAt time.Time) (bool, error) {
	var paid int64
	if !paidAt.IsZero() {
		paid = paidAt.UnixMilli()
	}
	return p.dao.UpdateStatus(ctx, orderID, string(from), string(to), paid)
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	res := domain.Payment{
		ID:          pmt.Id,
		SN:          pmt.SN,
		OrderID:     pmt.OrderId,
		OrderSN:     pmt.OrderSn,
		UID:         pmt.UID,
		Method:      domain.Method(pmt.Method),
		ExternalRef: pmt.ExternalRef.String,
		Amount:      pmt.Amount,
		Status:      domain.Status(pmt.Status),
		Ctime:       time.UnixMilli(pmt.Ctime),
		Utime:       time.UnixMilli(pmt.Utime),
	}
	if pmt.PaidAt > 0 {
		res.PaidAt = time.UnixMilli(pmt.PaidAt)
	}
	return res
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:      pmt.ID,
		SN:      pmt.SN,
		OrderId: pmt.OrderID,
		OrderSn: pmt.OrderSN,
		UID:     pmt.UID,
		Method:  string(pmt.Method),
		ExternalRef: sql.NullString{
			String: pmt.ExternalRef,
			Valid:  pmt.ExternalRef != "",
		},
		Amount: pmt.Amount,
		Status: string(pmt.Status),
	}
}
