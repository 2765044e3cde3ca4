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
	"database/sql"
	"time"

	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/ego-component/egorm"
)

type PaymentDAO interface {
	Insert(ctx context.Context, pmt Payment) (int64, error)
	FindByOrderID(ctx context.Context, orderID int64) (Payment, error)
	FindBySN(ctx context.Context, sn string) (Payment, error)
	// UpdateStatus 只有当前状态是 from 的时候才会更新，返回是否更新成功
	UpdateStatus(ctx context.Context, orderID int64, from, to string, paidAt int64) (bool, error)
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) Insert(ctx context.Context, pmt Payment) (int64, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := database.Conn(ctx, g.db).Create(&pmt).Error
	return pmt.Id, err
}

func (g *PaymentGORMDAO) FindByOrderID(ctx context.Context, orderID int64) (Payment, error) {
	var res Payment
	err := database.Conn(ctx, g.db).Where("order_id = ?", orderID).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) FindBySN(ctx context.Context, sn string) (Payment, error) {
	var res Payment
	err := database.Conn(ctx, g.db).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) UpdateStatus(ctx context.Context, orderID int64, from, to string, paidAt int64) (bool, error) {
	updates := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	if paidAt > 0 {
		updates["paid_at"] = paidAt
	}
	res := database.Conn(ctx, g.db).Model(&Payment{}).
		Where("order_id = ? AND status = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected > 0, res.Error
}

type Payment struct {
	Id          int64          `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN          string         `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	OrderId     int64          `gorm:"not null;uniqueIndex:uniq_order_id;comment:订单自增ID"`
	OrderSn     string         `gorm:"type:varchar(255);not null;comment:订单序列号"`
	UID         int64          `gorm:"column:uid;not null;index:idx_uid;comment:支付者ID"`
	Method      string         `gorm:"type:varchar(16);not null;comment:支付方式 COD/ONLINE"`
	ExternalRef sql.NullString `gorm:"type:varchar(255);comment:支付网关交易号"`
	Amount      int64          `gorm:"not null;comment:支付金额"`
	Status      string         `gorm:"type:varchar(16);not null;default:PENDING;comment:支付状态 PENDING/PAID/FAILED"`
	PaidAt      int64          `gorm:"comment:支付时间"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}
