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

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercent DiscountType = "PERCENT"
	DiscountTypeAmount  DiscountType = "AMOUNT"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercent || t == DiscountTypeAmount
}

type Coupon struct {
	ID            int64
	Code          string
	Type          DiscountType
	Value         int64
	MinimumAmount int64
	StartDate     time.Time
	EndDate       time.Time
	IsActive      bool
	// 小于等于 0 表示不限制
	UsageLimit        int64
	UsedCount         int64
	UsageLimitPerUser int64
	ApplyToShipping   bool
}

// CheckWindow 两端都是闭区间，在有效期内返回 true
func (c Coupon) CheckWindow(now time.Time) (Reason, bool) {
	switch {
	case now.Before(c.StartDate):
		return ReasonNotStarted, false
	case now.After(c.EndDate):
		return ReasonExpired, false
	}
	return "", true
}

func (c Coupon) Exhausted() bool {
	return c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit
}

// Discount 计算优惠。
// 运费券只减运费，且不会超过运费；商品券金额券直接减，百分比券按小计算，都不封顶。
func (c Coupon) Discount(subtotal, shippingFee int64) DiscountResult {
	res := DiscountResult{CouponID: c.ID, Code: c.Code}
	if c.ApplyToShipping {
		var d int64
		switch c.Type {
		case DiscountTypeAmount:
			d = c.Value
		case DiscountTypePercent:
			d = percentOf(shippingFee, c.Value)
		}
		res.ShippingDiscount = min(d, shippingFee)
		return res
	}
	switch c.Type {
	case DiscountTypeAmount:
		res.ProductDiscount = c.Value
	case DiscountTypePercent:
		res.ProductDiscount = percentOf(subtotal, c.Value)
	}
	return res
}

// percentOf 向零取整
func percentOf(base, percent int64) int64 {
	return decimal.NewFromInt(base).
		Mul(decimal.NewFromInt(percent)).
		Div(decimal.NewFromInt(100)).
		IntPart()
}

// DiscountResult 商品优惠和运费优惠只会有一个不为零
type DiscountResult struct {
	CouponID         int64
	Code             string
	ProductDiscount  int64
	ShippingDiscount int64
}

func (r DiscountResult) Total() int64 {
	return r.ProductDiscount + r.ShippingDiscount
}

// UserCoupon 发放给某个用户的优惠券
type UserCoupon struct {
	ID        int64
	UID       int64
	CouponID  int64
	ExpiresAt time.Time
	IsUsed    bool
	UsedAt    time.Time
	OrderID   int64
}

// Usage 每核销一次记录一条
type Usage struct {
	ID       int64
	UID      int64
	CouponID int64
	OrderID  int64
	Ctime    time.Time
}
