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
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/checkout/internal/coupon"
	"github.com/ecodeclub/checkout/internal/order/internal/repository"
)

var (
	ErrInvalidAddress       = errors.New("收货地址不存在或不属于当前用户")
	ErrEmptyCartSelection   = errors.New("没有选中购物车商品或者商品不属于当前用户")
	ErrInvalidPaymentMethod = errors.New("支付方式非法")
	ErrInvalidTransition    = errors.New("订单状态流转非法")
	// ErrPersistence 存储层失败，不向用户暴露细节
	ErrPersistence   = errors.New("订单保存失败")
	ErrOrderNotFound = repository.ErrOrderNotFound
)

type ItemReason string

const (
	ReasonProductUnavailable ItemReason = "PRODUCT_UNAVAILABLE"
	ReasonInsufficientStock  ItemReason = "INSUFFICIENT_STOCK"
)

type ItemViolation struct {
	ProductID int64
	VariantID int64
	Reason    ItemReason
	Requested int64
	// Available 只有库存不足的时候有意义，确认订单时为 -1 表示未知
	Available int64
}

// ItemsError 一次性返回所有不满足条件的商品行
type ItemsError struct {
	Violations []ItemViolation
}

func (e *ItemsError) Error() string {
	var sb strings.Builder
	sb.WriteString("商品校验失败:")
	for _, v := range e.Violations {
		fmt.Fprintf(&sb, " [%s product=%d variant=%d qty=%d]", v.Reason, v.ProductID, v.VariantID, v.Requested)
	}
	return sb.String()
}

func (e *ItemsError) add(v ItemViolation) {
	e.Violations = append(e.Violations, v)
}

func (e *ItemsError) empty() bool {
	return len(e.Violations) == 0
}

// CouponError 优惠券不可用，Reason 可以直接返回给前端
type CouponError struct {
	Code   string
	Reason coupon.Reason
	cause  error
}

func newCouponError(code string, ve *coupon.ValidationError) *CouponError {
	return &CouponError{Code: code, Reason: ve.Reason, cause: ve}
}

func (e *CouponError) Error() string {
	return fmt.Sprintf("优惠券 %s 不可用: %s", e.Code, e.Reason)
}

func (e *CouponError) Unwrap() error {
	return e.cause
}

func persistenceErr(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
