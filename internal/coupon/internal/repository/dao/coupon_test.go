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

package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestCouponGORMDAO_Redeem(t *testing.T) {
	const (
		uid      int64 = 7
		couponID int64 = 3
		orderID  int64 = 99
		now      int64 = 1716206400000
	)
	grantRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "uid", "coupon_id", "expires_at", "is_used"}).
			AddRow(11, uid, couponID, now+1000, false)
	}
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "核销成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `coupons` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT `id`,`usage_limit_per_user` FROM `coupons`").
					WillReturnRows(sqlmock.NewRows([]string{"id", "usage_limit_per_user"}).AddRow(couponID, 2))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `coupon_usages`.*FOR SHARE").
					WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
				mock.ExpectQuery("SELECT \\* FROM `user_coupons`.*FOR UPDATE").
					WillReturnRows(grantRows())
				mock.ExpectExec("UPDATE `user_coupons` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `coupon_usages`").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "总次数用完",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `coupons` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrUsageLimitExceeded,
		},
		{
			name: "个人次数用完",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `coupons` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT `id`,`usage_limit_per_user` FROM `coupons`").
					WillReturnRows(sqlmock.NewRows([]string{"id", "usage_limit_per_user"}).AddRow(couponID, 1))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `coupon_usages`").
					WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
			},
			wantErr: ErrUserLimitExceeded,
		},
		{
			name: "没有可用的发放记录",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `coupons` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT `id`,`usage_limit_per_user` FROM `coupons`").
					WillReturnRows(sqlmock.NewRows([]string{"id", "usage_limit_per_user"}).AddRow(couponID, 0))
				mock.ExpectQuery("SELECT \\* FROM `user_coupons`").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: ErrGrantUnavailable,
		},
		{
			name: "发放记录被抢先使用",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `coupons` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT `id`,`usage_limit_per_user` FROM `coupons`").
					WillReturnRows(sqlmock.NewRows([]string{"id", "usage_limit_per_user"}).AddRow(couponID, 0))
				mock.ExpectQuery("SELECT \\* FROM `user_coupons`").
					WillReturnRows(grantRows())
				mock.ExpectExec("UPDATE `user_coupons` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrGrantUnavailable,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
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
			mock.ExpectBegin()
			tc.mock(mock)
			if tc.wantErr == nil {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			err = database.NewGormTransactor(db).Transaction(context.Background(), func(ctx context.Context) error {
				return NewCouponGORMDAO(db).Redeem(ctx, uid, couponID, orderID, now)
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCouponGORMDAO_RedeemWithoutTransaction(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	err = NewCouponGORMDAO(db).Redeem(context.Background(), 7, 3, 99, 1716206400000)
	assert.ErrorIs(t, err, database.ErrNotInTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}
