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
	"fmt"
	"time"

	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUsageLimitExceeded = errors.New("优惠券使用次数已达上限")
	ErrUserLimitExceeded  = errors.New("用户使用次数已达上限")
	ErrGrantUnavailable   = errors.New("用户没有可用的优惠券")
)

type CouponDAO interface {
	FindByCode(ctx context.Context, code string) (Coupon, error)
	Create(ctx context.Context, c Coupon) (int64, error)
	CreateUserCoupon(ctx context.Context, uc UserCoupon) (int64, error)
	// CountUsableGrants 统计未使用且未过期的发放记录
	CountUsableGrants(ctx context.Context, uid, couponID, now int64) (int64, error)
	CountUsages(ctx context.Context, uid, couponID int64) (int64, error)
	// Redeem 在 ctx 携带的事务里面核销，所有上限都在这里用条件更新或者加锁读重新校验
	Redeem(ctx context.Context, uid, couponID, orderID, now int64) error
}

type CouponGORMDAO struct {
	db *egorm.Component
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &CouponGORMDAO{db: db}
}

func (d *CouponGORMDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var res Coupon
	err := database.Conn(ctx, d.db).Where("code = ?", code).First(&res).Error
	return res, err
}

func (d *CouponGORMDAO) Create(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := database.Conn(ctx, d.db).Create(&c).Error
	return c.Id, err
}

func (d *CouponGORMDAO) CreateUserCoupon(ctx context.Context, uc UserCoupon) (int64, error) {
	now := time.Now().UnixMilli()
	uc.Ctime, uc.Utime = now, now
	err := database.Conn(ctx, d.db).Create(&uc).Error
	return uc.Id, err
}

func (d *CouponGORMDAO) CountUsableGrants(ctx context.Context, uid, couponID, now int64) (int64, error) {
	var cnt int64
	err := database.Conn(ctx, d.db).Model(&UserCoupon{}).
		Where("uid = ? AND coupon_id = ? AND is_used = ? AND expires_at >= ?", uid, couponID, false, now).
		Count(&cnt).Error
	return cnt, err
}

func (d *CouponGORMDAO) CountUsages(ctx context.Context, uid, couponID int64) (int64, error) {
	var cnt int64
	err := database.Conn(ctx, d.db).Model(&CouponUsage{}).
		Where("uid = ? AND coupon_id = ?", uid, couponID).
		Count(&cnt).Error
	return cnt, err
}

func (d *CouponGORMDAO) Redeem(ctx context.Context, uid, couponID, orderID, now int64) error {
	// 加锁读离开事务就没有意义了
	if !database.InTransaction(ctx) {
		return fmt.Errorf("核销优惠券: %w", database.ErrNotInTransaction)
	}
	db := database.Conn(ctx, d.db)
	// 先更新优惠券，拿到这一行的写锁，同一张券的核销到这里就串行了
	res := db.Model(&Coupon{}).
		Where("id = ? AND is_active = ? AND (usage_limit <= 0 OR used_count < usage_limit)", couponID, true).
		Updates(map[string]any{
			"used_count": gorm.Expr("used_count + 1"),
			"utime":      now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUsageLimitExceeded
	}

	var c Coupon
	err := db.Select("id", "usage_limit_per_user").Where("id = ?", couponID).First(&c).Error
	if err != nil {
		return err
	}
	if c.UsageLimitPerUser > 0 {
		var cnt int64
		// 加锁读，读到的是最新提交的数据而不是事务开始时的快照
		err = db.Model(&CouponUsage{}).
			Clauses(clause.Locking{Strength: "SHARE"}).
			Where("uid = ? AND coupon_id = ?", uid, couponID).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt >= c.UsageLimitPerUser {
			return ErrUserLimitExceeded
		}
	}

	// 优先用最早过期的那一张
	var grant UserCoupon
	err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("uid = ? AND coupon_id = ? AND is_used = ? AND expires_at >= ?", uid, couponID, false, now).
		Order("expires_at ASC").
		First(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrGrantUnavailable
	}
	if err != nil {
		return err
	}
	res = db.Model(&UserCoupon{}).
		Where("id = ? AND is_used = ?", grant.Id, false).
		Updates(map[string]any{
			"is_used":  true,
			"used_at":  now,
			"order_id": orderID,
			"utime":    now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGrantUnavailable
	}
	return db.Create(&CouponUsage{
		UID:      uid,
		CouponID: couponID,
		OrderID:  orderID,
		Ctime:    now,
		Utime:    now,
	}).Error
}

type Coupon struct {
	Id                int64  `gorm:"primaryKey;autoIncrement;comment:优惠券自增ID"`
	Code              string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code;comment:优惠码"`
	Type              string `gorm:"type:varchar(16);not null;comment:优惠类型 PERCENT=百分比 AMOUNT=金额"`
	Value             int64  `gorm:"not null;comment:优惠值,百分比券为1-100,金额券为金额"`
	MinimumAmount     int64  `gorm:"not null;default:0;comment:最低消费金额"`
	StartDate         int64  `gorm:"not null;comment:生效时间,毫秒"`
	EndDate           int64  `gorm:"not null;comment:失效时间,毫秒"`
	IsActive          bool   `gorm:"not null;default:true;comment:是否启用"`
	UsageLimit        int64  `gorm:"not null;default:0;comment:总使用次数上限,0表示不限制"`
	UsedCount         int64  `gorm:"not null;default:0;comment:已使用次数"`
	UsageLimitPerUser int64  `gorm:"not null;default:0;comment:每个用户的使用次数上限,0表示不限制"`
	ApplyToShipping   bool   `gorm:"not null;default:false;comment:是否是运费券"`
	Ctime             int64
	Utime             int64
}

type UserCoupon struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	UID       int64 `gorm:"column:uid;not null;index:idx_uid_coupon,priority:1;comment:用户ID"`
	CouponID  int64 `gorm:"not null;index:idx_uid_coupon,priority:2;comment:优惠券ID"`
	ExpiresAt int64 `gorm:"not null;comment:过期时间,毫秒"`
	IsUsed    bool  `gorm:"not null;default:false"`
	UsedAt    int64 `gorm:"not null;default:0"`
	OrderID   int64 `gorm:"not null;default:0;comment:核销的订单ID"`
	Ctime     int64
	Utime     int64
}

type CouponUsage struct {
	Id       int64 `gorm:"primaryKey;autoIncrement"`
	UID      int64 `gorm:"column:uid;not null;index:idx_uid_coupon,priority:1"`
	CouponID int64 `gorm:"not null;index:idx_uid_coupon,priority:2"`
	OrderID  int64 `gorm:"not null;uniqueIndex:uniq_order_id;comment:一个订单只能用一张券"`
	Ctime    int64
	Utime    int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Coupon{}, &UserCoupon{}, &CouponUsage{})
}
