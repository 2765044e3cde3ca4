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

func TestStatus_CanTransitionTo(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusProcessing, StatusDelivered, StatusCancelled}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:    true,
		{StatusConfirmed, StatusProcessing}: true,
		{StatusProcessing, StatusDelivered}: true,
	}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_CanCancel(t *testing.T) {
	assert.True(t, StatusPending.CanCancel())
	assert.True(t, StatusConfirmed.CanCancel())
	assert.False(t, StatusProcessing.CanCancel())
	assert.False(t, StatusDelivered.CanCancel())
	assert.False(t, StatusCancelled.CanCancel())
}

func TestTimeline(t *testing.T) {
	base := time.UnixMilli(1709600000000)
	histories := []StatusHistory{
		{To: StatusPending, Ctime: base},
		{From: StatusPending, To: StatusConfirmed, Ctime: base.Add(time.Minute)},
		// 数据修复之类的原因导致同一个状态出现了两次
		{From: StatusConfirmed, To: StatusConfirmed, Ctime: base.Add(3 * time.Minute)},
		{From: StatusConfirmed, To: StatusProcessing, Ctime: base.Add(2 * time.Minute)},
	}
	got := Timeline(histories)
	assert.Equal(t, map[Status]time.Time{
		StatusPending:    base,
		StatusConfirmed:  base.Add(3 * time.Minute),
		StatusProcessing: base.Add(2 * time.Minute),
	}, got)
}

func TestOrderTotals(t *testing.T) {
	testCases := []struct {
		name      string
		totals    OrderTotals
		wantTotal int64
		wantDisc  int64
	}{
		{
			name:      "没有优惠",
			totals:    NewOrderTotals(200000, 30000, 0, 0),
			wantTotal: 230000,
		},
		{
			name:      "商品优惠",
			totals:    NewOrderTotals(200000, 30000, 50000, 0),
			wantTotal: 180000,
			wantDisc:  50000,
		},
		{
			name:      "运费优惠",
			totals:    NewOrderTotals(200000, 30000, 0, 15000),
			wantTotal: 215000,
			wantDisc:  15000,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantTotal, tc.totals.Total())
			assert.Equal(t, tc.wantDisc, tc.totals.Discount())
			assert.Equal(t, tc.totals.Subtotal()+tc.totals.ShippingFee()-tc.totals.Discount(), tc.totals.Total())
		})
	}
}

func TestSumItems(t *testing.T) {
	items := []OrderItem{
		NewOrderItem(1, 0, "T恤", "", "TS-1", 100000, 1),
		NewOrderItem(2, 5, "鞋", "42码", "SH-42", 50000, 2),
	}
	assert.Equal(t, int64(100000), items[1].LineTotal)
	assert.Equal(t, int64(200000), SumItems(items))
}
