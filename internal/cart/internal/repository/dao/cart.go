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

type CartDAO interface {
	FindByIDs(ctx context.Context, uid int64, ids []int64) ([]CartItem, error)
	// Upsert 同一个商品规格再次加入购物车时累加数量
	Upsert(ctx context.Context, item CartItem) (int64, error)
	DeleteByIDs(ctx context.Context, uid int64, ids []int64) (int64, error)
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (d *CartGORMDAO) FindByIDs(ctx context.Context, uid int64, ids []int64) ([]CartItem, error) {
	var res []CartItem
	err := database.Conn(ctx, d.db).
		Where("uid = ? AND id IN ?", uid, ids).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) Upsert(ctx context.Context, item CartItem) (int64, error) {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	err := database.Conn(ctx, d.db).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
			"utime":    now,
		}),
	}).Create(&item).Error
	return item.Id, err
}

func (d *CartGORMDAO) DeleteByIDs(ctx context.Context, uid int64, ids []int64) (int64, error) {
	res := database.Conn(ctx, d.db).
		Where("uid = ? AND id IN ?", uid, ids).
		Delete(&CartItem{})
	return res.RowsAffected, res.Error
}

type CartItem struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	UID       int64 `gorm:"column:uid;not null;uniqueIndex:uniq_uid_product_variant,priority:1;comment:用户ID"`
	ProductID int64 `gorm:"not null;uniqueIndex:uniq_uid_product_variant,priority:2"`
	VariantID int64 `gorm:"not null;default:0;uniqueIndex:uniq_uid_product_variant,priority:3"`
	Quantity  int64 `gorm:"not null;comment:数量"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&CartItem{})
}
