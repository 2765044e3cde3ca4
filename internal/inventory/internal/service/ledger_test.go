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

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/checkout/internal/inventory/internal/domain"
	"github.com/ecodeclub/checkout/internal/inventory/internal/repository"
	"github.com/ecodeclub/checkout/internal/inventory/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestLedger(t *testing.T) (Ledger, sqlmock.Sqlmock) {
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
	return NewLedger(repository.NewStockRepository(dao.NewStockGORMDAO(db))), mock
}

func TestLedger_Decrement(t *testing.T) {
	key := domain.StockKey{ProductID: 1, VariantID: 11}
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		qty     int64
		wantErr error
	}{
		{
			name: "库存足够",
			qty:  2,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `stocks` SET").
					WithArgs(int64(2), sqlmock.AnyArg(), int64(1), int64(11), int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "库存不足没有更新任何行",
			qty:  4,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `stocks` SET").
					WithArgs(int64(4), sqlmock.AnyArg(), int64(1), int64(11), int64(4)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrInsufficientStock,
		},
		{
			name: "数据库错误",
			qty:  1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `stocks` SET").WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
		{
			name:    "数量非法",
			qty:     0,
			mock:    func(mock sqlmock.Sqlmock) {},
			wantErr: ErrInvalidQuantity,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			l, mock := newTestLedger(t)
			tc.mock(mock)
			err := l.Decrement(context.Background(), key, tc.qty)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else if errors.Is(tc.wantErr, ErrInsufficientStock) || errors.Is(tc.wantErr, ErrInvalidQuantity) {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.EqualError(t, err, tc.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedger_Increment(t *testing.T) {
	key := domain.StockKey{ProductID: 1}
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "回补成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `stocks` SET").
					WithArgs(int64(2), sqlmock.AnyArg(), int64(1), int64(0)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "库存记录不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `stocks` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrStockNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			l, mock := newTestLedger(t)
			tc.mock(mock)
			err := l.Increment(context.Background(), key, 2)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedger_CheckAvailable(t *testing.T) {
	key := domain.StockKey{ProductID: 3, VariantID: 31}
	testCases := []struct {
		name      string
		mock      func(mock sqlmock.Sqlmock)
		qty       int64
		available bool
	}{
		{
			name: "库存足够",
			qty:  3,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "product_id", "variant_id", "stock"}).
					AddRow(1, 3, 31, 3)
				mock.ExpectQuery("SELECT \\* FROM `stocks`").WillReturnRows(rows)
			},
			available: true,
		},
		{
			name: "库存不够",
			qty:  4,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "product_id", "variant_id", "stock"}).
					AddRow(1, 3, 31, 3)
				mock.ExpectQuery("SELECT \\* FROM `stocks`").WillReturnRows(rows)
			},
		},
		{
			name: "没有库存记录",
			qty:  1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `stocks`").
					WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "variant_id", "stock"}))
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			l, mock := newTestLedger(t)
			tc.mock(mock)
			ok, err := l.CheckAvailable(context.Background(), key, tc.qty)
			require.NoError(t, err)
			assert.Equal(t, tc.available, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
