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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/checkout/internal/coupon/internal/domain"
	"github.com/ecodeclub/checkout/internal/coupon/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrCouponNotFound = errors.New("优惠券不存在")

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/coupon.mock.go CouponRepository
type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	Create(ctx context.Context, c domain.Coupon) (int64, error)
	Grant(ctx context.Context, uc domain.UserCoupon) (int64, error)
	HasUsableGrant(ctx context.Context, uid, couponID int64, now time.Time) (bool, error)
	CountUsages(ctx context.Context, uid, couponID int64) (int64, error)
	// Redeem 返回的错误里面，可以识别的是 dao 层定义的三个上限错误
	Redeem(ctx context.Context, uid, couponID, orderID int64, now time.Time) error
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

type couponRepository struct {
	dao dao.CouponDAO
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := r.dao.FindByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Coupon{}, ErrCouponNotFound
	}
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) Create(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(c))
}

func (r *couponRepository) Grant(ctx context.Context, uc domain.UserCoupon) (int64, error) {
	return r.dao.CreateUserCoupon(ctx, dao.UserCoupon{
		UID:       uc.UID,
		CouponID:  uc.CouponID,
		ExpiresAt: uc.ExpiresAt.UnixMilli(),
	})
}

func (r *couponRepository) HasUsableGrant(ctx context.Context, uid, couponID int64, now time.Time) (bool, error) {
	cnt, err := r.dao.CountUsableGrants(ctx, uid, couponID, now.UnixMilli())
	return cnt > 0, err
}

func (r *couponRepository) CountUsages(ctx context.Context, uid, couponID int64) (int64, error) {
	return r.dao.CountUsages(ctx, uid, couponID)
}

func (r *couponRepository) Redeem(ctx context.Context, uid, couponID, orderID int64, now time.Time) error {
	return r.dao.Redeem(ctx, uid, couponID, orderID, now.UnixMilli())
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:                c.Id,
		Code:              c.Code,
		Type:              domain.DiscountType(c.Type),
		Value:             c.Value,
		MinimumAmount:     c.MinimumAmount,
		StartDate:         time.UnixMilli(c.StartDate),
		EndDate:           time.UnixMilli(c.EndDate),
		IsActive:          c.IsActive,
		UsageLimit:        c.UsageLimit,
		UsedCount:         c.UsedCount,
		UsageLimitPerUser: c.UsageLimitPerUser,
		ApplyToShipping:   c.ApplyToShipping,
	}
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:                c.ID,
		Code:              c.Code,
		Type:              string(c.Type),
		Value:             c.Value,
		MinimumAmount:     c.MinimumAmount,
		StartDate:         c.StartDate.UnixMilli(),
		EndDate:           c.EndDate.UnixMilli(),
		IsActive:          c.IsActive,
		UsageLimit:        c.UsageLimit,
		UsedCount:         c.UsedCount,
		UsageLimitPerUser: c.UsageLimitPerUser,
		ApplyToShipping:   c.ApplyToShipping,
	}
}
