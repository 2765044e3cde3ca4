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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_Discount(t *testing.T) {
	testCases := []struct {
		name        string
		coupon      Coupon
		subtotal    int64
		shippingFee int64
		want        DiscountResult
	}{
		{
			name:     "商品金额券",
			coupon:   Coupon{ID: 1, Code: "SAVE50K", Type: DiscountTypeAmount, Value: 50_000},
			subtotal: 200_000, shippingFee: 30_000,
			want: DiscountResult{CouponID: 1, Code: "SAVE50K", ProductDiscount: 50_000},
		},
		{
			name:     "商品百分比券不封顶",
			coupon:   Coupon{ID: 2, Code: "P10", Type: DiscountTypePercent, Value: 10},
			subtotal: 1_234_567, shippingFee: 30_000,
			want: DiscountResult{CouponID: 2, Code: "P10", ProductDiscount: 123_456},
		},
		{
			name:     "运费百分比券",
			coupon:   Coupon{ID: 3, Code: "SHIP50", Type: DiscountTypePercent, Value: 50, ApplyToShipping: true},
			subtotal: 200_000, shippingFee: 30_000,
			want: DiscountResult{CouponID: 3, Code: "SHIP50", ShippingDiscount: 15_000},
		},
		{
			name:     "运费金额券不超过运费",
			coupon:   Coupon{ID: 4, Code: "FREESHIP", Type: DiscountTypeAmount, Value: 50_000, ApplyToShipping: true},
			subtotal: 200_000, shippingFee: 30_000,
			want: DiscountResult{CouponID: 4, Code: "FREESHIP", ShippingDiscount: 30_000},
		},
		{
			name:     "运费百分比券超过百分百也不超过运费",
			coupon:   Coupon{ID: 5, Code: "SHIP150", Type: DiscountTypePercent, Value: 150, ApplyToShipping: true},
			subtotal: 200_000, shippingFee: 30_000,
			want: DiscountResult{CouponID: 5, Code: "SHIP150", ShippingDiscount: 30_000},
		},
		{
			name:     "运费为零",
			coupon:   Coupon{ID: 6, Code: "SHIP", Type: DiscountTypeAmount, Value: 10_000, ApplyToShipping: true},
			subtotal: 200_000, shippingFee: 0,
			want: DiscountResult{CouponID: 6, Code: "SHIP"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := tc.coupon.Discount(tc.subtotal, tc.shippingFee)
			assert.Equal(t, tc.want, got)
			// 两个桶互斥
			assert.True(t, got.ProductDiscount == 0 || got.ShippingDiscount == 0)
		})
	}
}

func TestCoupon_CheckWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	c := Coupon{StartDate: start, EndDate: end}
	testCases := []struct {
		name       string
		now        time.Time
		wantReason Reason
		wantOK     bool
	}{
		{name: "开始时刻", now: start, wantOK: true},
		{name: "结束时刻", now: end, wantOK: true},
		{name: "还没开始", now: start.Add(-time.Second), wantReason: ReasonNotStarted},
		{name: "已经过期", now: end.Add(time.Second), wantReason: ReasonExpired},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reason, ok := c.CheckWindow(tc.now)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantReason, reason)
		})
	}
}

func TestCoupon_Exhausted(t *testing.T) {
	assert.False(t, Coupon{UsageLimit: 0, UsedCount: 100}.Exhausted())
	assert.False(t, Coupon{UsageLimit: 10, UsedCount: 9}.Exhausted())
	assert.True(t, Coupon{UsageLimit: 10, UsedCount: 10}.Exhausted())
}
