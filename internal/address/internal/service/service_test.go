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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/checkout/internal/address/internal/domain"
	"github.com/ecodeclub/checkout/internal/address/internal/repository"
	"github.com/ecodeclub/checkout/internal/address/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestService_FindUserAddress(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(mock sqlmock.Sqlmock)
		wantAddr domain.Address
		wantErr  error
	}{
		{
			name: "查找成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `addresses`").
					WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "receiver", "email", "district_id", "ward_code"}).
						AddRow(3, 9, "张三", "a@b.com", 1442, "20109"))
			},
			wantAddr: domain.Address{
				ID: 3, UID: 9, Receiver: "张三", Email: "a@b.com",
				DistrictID: 1442, WardCode: "20109",
			},
		},
		{
			name: "不是该用户的地址",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `addresses`").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: repository.ErrAddressNotFound,
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
			tc.mock(mock)

			svc := NewService(repository.NewAddressRepository(dao.NewAddressGORMDAO(db)))
			addr, err := svc.FindUserAddress(context.Background(), 9, 3)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantAddr, addr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
