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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/checkout/internal/coupon/internal/domain"
	"github.com/ecodeclub/checkout/internal/coupon/internal/repository"
	"github.com/ecodeclub/checkout/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInvalidCoupon = errors.New("优惠券参数非法")

//go:generate mockgen -source=./service.go -package=couponmocks -destination=../../mocks/coupon.mock.go Service
type Service interface {
	// ValidateCoupon 只读不写，校验失败返回 *domain.ValidationError
	ValidateCoupon(ctx context.Context, uid int64, code string, subtotal, shippingFee int64, now time.Time) (domain.DiscountResult, error)
	// Redeem 核销优惠券，要和订单在同一个事务里。
	// 并发核销导致超限的时候返回 *domain.ValidationError，调用方回滚整个事务
	Redeem(ctx context.Context, uid, couponID, orderID int64, now time.Time) error

	CreateCoupon(ctx context.Context, c domain.Coupon) (int64, error)
	GrantCoupon(ctx context.Context, uid, couponID int64, expiresAt time.Time) (int64, error)
	FindCouponByCode(ctx context.Context, code string) (domain.Coupon, error)
}

type service struct {
	repo   repository.CouponRepository
	tx     database.Transactor
	logger *elog.Component
}

func NewService(repo repository.CouponRepository, tx database.Transactor) Service {
	return &service{
		repo:   repo,
		tx:     tx,
		logger: elog.DefaultLogger,
	}
}

func (s *service) ValidateCoupon(ctx context.Context, uid int64, code string, subtotal, shippingFee int64, now time.Time) (domain.DiscountResult, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if errors.Is(err, repository.ErrCouponNotFound) {
		return domain.DiscountResult{}, domain.NewValidationError(code, domain.ReasonNotFound)
	}
	if err != nil {
		return domain.DiscountResult{}, fmt.Errorf("查询优惠券失败: %w", err)
	}
	if !c.IsActive {
		return domain.DiscountResult{}, domain.NewValidationError(code, domain.ReasonInactive)
	}
	if reason, ok := c.CheckWindow(now); !ok {
		return domain.DiscountResult{}, domain.NewValidationError(code, reason)
	}
	if c.Exhausted() {
		return domain.DiscountResult{}, domain.NewValidationError(code, domain.ReasonUsageLimitReached)
	}
	ok, err := s.repo.HasUsableGrant(ctx, uid, c.ID, now)
	if err != nil {
		return domain.DiscountResult{}, fmt.Errorf("查询用户优惠券失败: %w", err)
	}
	if !ok {
		return domain.DiscountResult{}, domain.NewValidationError(code, domain.ReasonNotGranted)
	}
	if c.UsageLimitPerUser > 0 {
		used, err := s.repo.CountUsages(ctx, uid, c.ID)
		if err != nil {
			return domain.DiscountResult{}, fmt.Errorf("查询优惠券使用记录失败: %w", err)
		}
		if used >= c.UsageLimitPerUser {
			return domain.DiscountResult{}, domain.NewValidationError(code, domain.ReasonUserLimitReached)
		}
	}
	if subtotal < c.MinimumAmount {
		return domain.DiscountResult{}, domain.NewValidationError(code, domain.ReasonBelowMinimum)
	}
	return c.Discount(subtotal, shippingFee), nil
}

func (s *service) Redeem(ctx context.Context, uid, couponID, orderID int64, now time.Time) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		err := s.repo.Redeem(ctx, uid, couponID, orderID, now)
		switch {
		case errors.Is(err, dao.ErrUsageLimitExceeded):
			return domain.NewValidationError(fmt.Sprintf("#%d", couponID), domain.ReasonUsageLimitReached)
		case errors.Is(err, dao.ErrUserLimitExceeded):
			return domain.NewValidationError(fmt.Sprintf("#%d", couponID), domain.ReasonUserLimitReached)
		case errors.Is(err, dao.ErrGrantUnavailable):
			return domain.NewValidationError(fmt.Sprintf("#%d", couponID), domain.ReasonNotGranted)
		case err != nil:
			return fmt.Errorf("核销优惠券失败: %w", err)
		}
		s.logger.Debug("核销优惠券",
			elog.Int64("uid", uid),
			elog.Int64("couponID", couponID),
			elog.Int64("orderID", orderID))
		return nil
	})
}

func (s *service) CreateCoupon(ctx context.Context, c domain.Coupon) (int64, error) {
	c.Code = strings.TrimSpace(c.Code)
	switch {
	case c.Code == "":
		return 0, fmt.Errorf("%w: 优惠码为空", ErrInvalidCoupon)
	case !c.Type.Valid():
		return 0, fmt.Errorf("%w: 优惠类型 %s", ErrInvalidCoupon, c.Type)
	case c.Value <= 0:
		return 0, fmt.Errorf("%w: 优惠值必须大于0", ErrInvalidCoupon)
	case c.Type == domain.DiscountTypePercent && c.Value > 100:
		return 0, fmt.Errorf("%w: 百分比不能超过100", ErrInvalidCoupon)
	case c.EndDate.Before(c.StartDate):
		return 0, fmt.Errorf("%w: 失效时间早于生效时间", ErrInvalidCoupon)
	}
	c.UsedCount = 0
	return s.repo.Create(ctx, c)
}

func (s *service) GrantCoupon(ctx context.Context, uid, couponID int64, expiresAt time.Time) (int64, error) {
	return s.repo.Grant(ctx, domain.UserCoupon{
		UID:       uid,
		CouponID:  couponID,
		ExpiresAt: expiresAt,
	})
}

func (s *service) FindCouponByCode(ctx context.Context, code string) (domain.Coupon, error) {
	return s.repo.FindByCode(ctx, code)
}
