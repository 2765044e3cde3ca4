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
	"github.com/ecodeclub/checkout/internal/product/internal/domain"
	"github.com/ecodeclub/checkout/internal/product/internal/repository"
	"github.com/ecodeclub/checkout/internal/product/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (Service, sqlmock.Sqlmock) {
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
	// 商品和规格是并发查询的
	mock.MatchExpectationsInOrder(false)
	return NewService(repository.NewProductRepository(dao.NewProductGORMDAO(db))), mock
}

func TestService_FindProducts(t *testing.T) {
	productCols := []string{"id", "sn", "name", "description", "price", "sale_price",
		"weight", "length", "width", "height", "status"}
	variantCols := []string{"id", "product_id", "sku", "name", "price", "sale_price",
		"weight", "length", "width", "height", "status"}
	testCases := []struct {
		name    string
		ids     []int64
		mock    func(mock sqlmock.Sqlmock)
		want    map[int64]domain.Product
		wantErr error
	}{
		{
			name: "商品带规格",
			ids:  []int64{1, 2, 3},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `products`").
					WillReturnRows(sqlmock.NewRows(productCols).
						AddRow(1, "P1", "键盘", "", 100000, 80000, 500, 40, 15, 4, 2).
						AddRow(2, "P2", "鼠标", "", 50000, 0, 100, 12, 6, 4, 1))
				mock.ExpectQuery("SELECT \\* FROM `product_variants`").
					WillReturnRows(sqlmock.NewRows(variantCols).
						AddRow(11, 1, "P1-RED", "红色", 110000, 0, 0, 0, 0, 0, 2))
			},
			want: map[int64]domain.Product{
				1: {
					ID: 1, SN: "P1", Name: "键盘",
					Price:     domain.Price{List: 100000, Sale: 80000},
					Dimension: domain.Dimension{Weight: 500, Length: 40, Width: 15, Height: 4},
					Status:    domain.StatusOnShelf,
					Variants: []domain.Variant{
						{
							ID: 11, ProductID: 1, SKU: "P1-RED", Name: "红色",
							Price:  domain.Price{List: 110000},
							Status: domain.StatusOnShelf,
						},
					},
				},
				2: {
					ID: 2, SN: "P2", Name: "鼠标",
					Price:     domain.Price{List: 50000},
					Dimension: domain.Dimension{Weight: 100, Length: 12, Width: 6, Height: 4},
					Status:    domain.StatusOffShelf,
					Variants:  []domain.Variant{},
				},
			},
		},
		{
			name: "空ID不查库",
			ids:  nil,
			mock: func(mock sqlmock.Sqlmock) {},
			want: map[int64]domain.Product{},
		},
		{
			name: "查询失败",
			ids:  []int64{1},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `products`").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectQuery("SELECT \\* FROM `product_variants`").
					WillReturnRows(sqlmock.NewRows(variantCols))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc, mock := newTestService(t)
			tc.mock(mock)
			got, err := svc.FindProducts(context.Background(), tc.ids)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestService_SaveProduct(t *testing.T) {
	svc, mock := newTestService(t)
	mock.MatchExpectationsInOrder(true)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `products`").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO `product_variants`").WillReturnResult(sqlmock.NewResult(51, 2))
	mock.ExpectCommit()

	id, err := svc.SaveProduct(context.Background(), domain.Product{
		SN:     "P5",
		Name:   "显示器",
		Price:  domain.Price{List: 3000000},
		Status: domain.StatusOnShelf,
		Variants: []domain.Variant{
			{SKU: "P5-24", Name: "24寸", Price: domain.Price{List: 3000000}, Status: domain.StatusOnShelf},
			{SKU: "P5-27", Name: "27寸", Price: domain.Price{List: 4000000}, Status: domain.StatusOnShelf},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
