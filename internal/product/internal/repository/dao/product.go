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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type ProductDAO interface {
	FindProductsByIDs(ctx context.Context, ids []int64) ([]Product, error)
	FindVariantsByProductIDs(ctx context.Context, productIDs []int64) ([]ProductVariant, error)
	Save(ctx context.Context, p Product, variants []ProductVariant) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

// FindProductsByIDs 不过滤状态，下架与否由调用方判断
func (d *ProductGORMDAO) FindProductsByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindVariantsByProductIDs(ctx context.Context, productIDs []int64) ([]ProductVariant, error) {
	var res []ProductVariant
	err := d.db.WithContext(ctx).Where("product_id IN ?", productIDs).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Save(ctx context.Context, p Product, variants []ProductVariant) (int64, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.Ctime, p.Utime = now, now
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if len(variants) == 0 {
			return nil
		}
		for i := range variants {
			variants[i].ProductID = p.Id
			variants[i].Ctime, variants[i].Utime = now, now
		}
		return tx.Create(&variants).Error
	})
	return p.Id, err
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Price       int64  `gorm:"not null;comment:标价"`
	SalePrice   int64  `gorm:"not null;default:0;comment:促销价,0表示没有促销"`
	Weight      int64  `gorm:"not null;default:0;comment:重量,单位克"`
	Length      int64  `gorm:"not null;default:0;comment:长,单位厘米"`
	Width       int64  `gorm:"not null;default:0;comment:宽,单位厘米"`
	Height      int64  `gorm:"not null;default:0;comment:高,单位厘米"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

type ProductVariant struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:规格自增ID"`
	ProductID int64  `gorm:"not null;index:idx_product_id;comment:商品自增ID"`
	SKU       string `gorm:"column:sku;type:varchar(255);not null;uniqueIndex:uniq_variant_sku;comment:SKU编码"`
	Name      string `gorm:"type:varchar(255);not null;comment:规格名称"`
	Price     int64  `gorm:"not null;comment:标价"`
	SalePrice int64  `gorm:"not null;default:0;comment:促销价,0表示没有促销"`
	Weight    int64  `gorm:"not null;default:0;comment:重量,单位克,0表示沿用商品"`
	Length    int64  `gorm:"not null;default:0"`
	Width     int64  `gorm:"not null;default:0"`
	Height    int64  `gorm:"not null;default:0"`
	Status    uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{}, &ProductVariant{})
}
