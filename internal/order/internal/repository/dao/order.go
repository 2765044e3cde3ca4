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
	"errors"
	"time"

	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var ErrDuplicatedSN = errors.New("订单序列号冲突")

type OrderDAO interface {
	// CreateOrder 写入订单和订单项，需要在事务中调用
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error)
	// UpdateStatus 只有当前状态为 from 的时候才会更新
	UpdateStatus(ctx context.Context, id int64, from, to string) (bool, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status string) error
	// UpdatePaymentStatusBySN 只会更新还在 PENDING 的支付状态
	UpdatePaymentStatusBySN(ctx context.Context, sn string, status string) (bool, error)
	AppendHistory(ctx context.Context, h OrderStatusHistory) error

	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySNAndUID(ctx context.Context, sn string, uid int64) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	FindHistoriesByOrderID(ctx context.Context, orderID int64) ([]OrderStatusHistory, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	// FindStalePending 创建时间早于 ctime 的待确认订单
	FindStalePending(ctx context.Context, ctime int64, limit int) ([]Order, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (g *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	db := database.Conn(ctx, g.db)
	if err := db.Create(&o).Error; err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedSN
			}
		}
		return 0, err
	}
	for i := range items {
		items[i].OrderId = o.Id
		items[i].Ctime, items[i].Utime = now, now
	}
	if err := db.Create(&items).Error; err != nil {
		return 0, err
	}
	return o.Id, nil
}

func (g *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to string) (bool, error) {
	res := database.Conn(ctx, g.db).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *OrderGORMDAO) UpdatePaymentStatus(ctx context.Context, id int64, status string) error {
	return database.Conn(ctx, g.db).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": status,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

func (g *OrderGORMDAO) UpdatePaymentStatusBySN(ctx context.Context, sn string, status string) (bool, error) {
	res := database.Conn(ctx, g.db).Model(&Order{}).
		Where("sn = ? AND payment_status = ?", sn, "PENDING").
		Updates(map[string]any{
			"payment_status": status,
			"utime":          time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *OrderGORMDAO) AppendHistory(ctx context.Context, h OrderStatusHistory) error {
	h.Ctime = time.Now().UnixMilli()
	return database.Conn(ctx, g.db).Create(&h).Error
}

func (g *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := database.Conn(ctx, g.db).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindBySNAndUID(ctx context.Context, sn string, uid int64) (Order, error) {
	var res Order
	err := database.Conn(ctx, g.db).Where("sn = ? AND uid = ?", sn, uid).First(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := database.Conn(ctx, g.db).Where("order_id = ?", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindHistoriesByOrderID(ctx context.Context, orderID int64) ([]OrderStatusHistory, error) {
	var res []OrderStatusHistory
	err := database.Conn(ctx, g.db).Where("order_id = ?", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindStalePending(ctx context.Context, ctime int64, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", "PENDING", ctime).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

type Order struct {
	Id               int64                            `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN               string                           `gorm:"type:varchar(64);not null;uniqueIndex:uniq_sn;comment:订单序列号"`
	UID              int64                            `gorm:"column:uid;not null;index:idx_uid;comment:购买者ID"`
	Status           string                           `gorm:"type:varchar(16);not null;index:idx_status_ctime,priority:1;comment:订单状态 PENDING/CONFIRMED/PROCESSING/DELIVERED/CANCELLED"`
	PaymentStatus    string                           `gorm:"type:varchar(16);not null;comment:支付状态 PENDING/PAID/FAILED"`
	PaymentMethod    string                           `gorm:"type:varchar(16);not null;comment:支付方式 COD/ONLINE"`
	Subtotal         int64                            `gorm:"not null;comment:商品小计"`
	ShippingFee      int64                            `gorm:"not null;comment:优惠前运费"`
	ProductDiscount  int64                            `gorm:"not null;default:0"`
	ShippingDiscount int64                            `gorm:"not null;default:0"`
	DiscountAmount   int64                            `gorm:"not null;default:0;comment:商品优惠与运费优惠之和"`
	TotalAmount      int64                            `gorm:"not null;comment:实付总额"`
	Address          sqlx.JsonColumn[AddressSnapshot] `gorm:"type:json;comment:收货地址快照"`
	CouponCode       string                           `gorm:"type:varchar(64)"`
	Ctime            int64                            `gorm:"index:idx_status_ctime,priority:2"`
	Utime            int64
}

type AddressSnapshot struct {
	Receiver     string `json:"receiver"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	ProvinceID   int64  `json:"provinceId"`
	ProvinceName string `json:"provinceName"`
	DistrictID   int64  `json:"districtId"`
	DistrictName string `json:"districtName"`
	WardCode     string `json:"wardCode"`
	WardName     string `json:"wardName"`
	Detail       string `json:"detail"`
}

type OrderItem struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId     int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId   int64  `gorm:"not null"`
	VariantId   int64  `gorm:"not null;default:0"`
	ProductName string `gorm:"type:varchar(255);not null"`
	VariantName string `gorm:"type:varchar(255)"`
	SKU         string `gorm:"type:varchar(128)"`
	UnitPrice   int64  `gorm:"not null;comment:下单时的单价"`
	Quantity    int64  `gorm:"not null"`
	LineTotal   int64  `gorm:"not null"`
	Ctime       int64
	Utime       int64
}

type OrderStatusHistory struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	OrderId    int64  `gorm:"not null;index:idx_order_id"`
	FromStatus string `gorm:"type:varchar(16);comment:初始记录为空"`
	Status     string `gorm:"type:varchar(16);not null"`
	Ctime      int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{}, &OrderStatusHistory{})
}
