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
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/checkout/internal/payment/internal/domain"
	"github.com/ecodeclub/checkout/internal/payment/internal/event"
	"github.com/ecodeclub/checkout/internal/payment/internal/repository"
	"github.com/ecodeclub/checkout/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/checkout/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type fakeProducer struct {
	events []event.PaymentEvent
	err    error
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.PaymentEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

func newService(t *testing.T, producer *fakeProducer) (Service, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	sn, err := snowflake.NewGenerator(1)
	require.NoError(t, err)
	return NewService(repository.NewPaymentRepository(dao.NewPaymentGORMDAO(db)), sn, producer), mock
}

func TestService_CreatePayment(t *testing.T) {
	testCases := []struct {
		name    string
		method  domain.Method
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
		assert  func(t *testing.T, pmt domain.Payment)
	}{
		{
			name:   "货到付款",
			method: domain.MethodCOD,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `payments`").WillReturnResult(sqlmock.NewResult(5, 1))
			},
			assert: func(t *testing.T, pmt domain.Payment) {
				assert.Equal(t, int64(5), pmt.ID)
				assert.Equal(t, domain.StatusPending, pmt.Status)
				assert.Contains(t, pmt.SN, "PAY")
				assert.Empty(t, pmt.ExternalRef)
			},
		},
		{
			name:   "在线支付生成占位交易号",
			method: domain.MethodOnline,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `payments`").WillReturnResult(sqlmock.NewResult(6, 1))
			},
			assert: func(t *testing.T, pmt domain.Payment) {
				assert.NotEmpty(t, pmt.ExternalRef)
			},
		},
		{
			name:    "非法支付方式",
			method:  domain.Method("CARD"),
			mock:    func(mock sqlmock.Sqlmock) {},
			wantErr: ErrInvalidMethod,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc, mock := newService(t, &fakeProducer{})
			tc.mock(mock)
			pmt, err := svc.CreatePayment(context.Background(), domain.Payment{
				OrderID: 1, OrderSN: "SN1", UID: 9, Method: tc.method, Amount: 100,
			})
			require.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				tc.assert(t, pmt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestService_MarkPaid(t *testing.T) {
	svc, mock := newService(t, &fakeProducer{})
	mock.ExpectExec("UPDATE `payments` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, svc.MarkPaid(context.Background(), 1, time.Now()))

	mock.ExpectExec("UPDATE `payments` SET").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, svc.MarkPaid(context.Background(), 1, time.Now()), ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateStatus(t *testing.T) {
	row := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "sn", "order_id", "order_sn", "uid", "status"}).
			AddRow(5, "PAY1", 1, "SN1", 9, "PENDING")
	}
	testCases := []struct {
		name       string
		status     domain.Status
		mock       func(mock sqlmock.Sqlmock)
		produceErr error
		wantErr    error
		wantEvents []event.PaymentEvent
	}{
		{
			name:   "支付成功",
			status: domain.StatusPaid,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `payments`").WillReturnRows(row())
				mock.ExpectExec("UPDATE `payments` SET").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantEvents: []event.PaymentEvent{{OrderSN: "SN1", UID: 9, Status: "PAID"}},
		},
		{
			name:   "发送事件失败不影响结果",
			status: domain.StatusFailed,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `payments`").WillReturnRows(row())
				mock.ExpectExec("UPDATE `payments` SET").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			produceErr: errors.New("mq error"),
			wantEvents: []event.PaymentEvent{{OrderSN: "SN1", UID: 9, Status: "FAILED"}},
		},
		{
			name:   "重复回调",
			status: domain.StatusPaid,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `payments`").WillReturnRows(row())
				mock.ExpectExec("UPDATE `payments` SET").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrStatusConflict,
		},
		{
			name:   "支付记录不存在",
			status: domain.StatusPaid,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `payments`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: repository.ErrPaymentNotFound,
		},
		{
			name:    "不能回到PENDING",
			status:  domain.StatusPending,
			mock:    func(mock sqlmock.Sqlmock) {},
			wantErr: ErrStatusConflict,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			producer := &fakeProducer{err: tc.produceErr}
			svc, mock := newService(t, producer)
			tc.mock(mock)
			err := svc.UpdateStatus(context.Background(), "PAY1", tc.status)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantEvents, producer.events)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
