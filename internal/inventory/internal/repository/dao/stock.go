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
	"time"

	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockDAO interface {
	FindStocks(ctx context.Context, keys [][2]int64) ([]Stock, error)
	// Decrement 只有库存足够的时候才扣减，返回是否扣减成功
	Decrement(ctx context.Context, productID, variantID, qty int64) (bool, error)
	// Increment 返回是否找到了库存记录
	Increment(ctx context.Context, productID, variantID, qty int64) (bool, error)
	Upsert(ctx context.Context, s Stock) error
}

type StockGORMDAO struct {
	db *egorm.Component
}

func NewStockGORMDAO(db *egorm.Component) StockDAO {
	return &StockGORMDAO{db: db}
}

func (d *StockGORMDAO) FindStocks(ctx context.Context, keys [][2]int64) ([]Stock, error) {
	var res []Stock
	if len(keys) == 0 {
		return res, nil
	}
	pairs := make([][]any, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, []any{k[0], k[1]})
	}
	err := database.Conn(ctx, d.db).
		Where("(product_id, variant_id) IN ?", pairs).
		Find(&res).Error
	return res, err
}

func (d *StockGORMDAO) Decrement(ctx context.Context, productID, variantID, qty int64) (bool, error) {
	res := database.Conn(ctx, d.db).Model(&Stock{}).
		Where("product_id = ? AND variant_id = ? AND stock >= ?", productID, variantID, qty).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", qty),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *StockGORMDAO) Increment(ctx context.Context, productID, variantID, qty int64) (bool, error) {
	res := database.Conn(ctx, d.db).Model(&Stock{}).
		Where("product_id = ? AND variant_id = ?", productID, variantID).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", qty),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *StockGORMDAO) Upsert(ctx context.Context, s Stock) error {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	return database.Conn(ctx, d.db).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"stock": s.Stock,
			"utime": now,
		}),
	}).Create(&s).Error
}

type Stock struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	ProductID int64 `gorm:"not null;uniqueIndex:uniq_product_variant,priority:1;comment:商品ID"`
	VariantID int64 `gorm:"not null;default:0;uniqueIndex:uniq_product_variant,priority:2;comment:规格ID,0表示没有规格"`
	Stock     int64 `gorm:"not null;default:0;check:chk_stock_non_negative,stock >= 0;comment:可售库存"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Stock{})
}
