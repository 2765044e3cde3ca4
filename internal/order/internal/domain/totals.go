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

// OrderTotals 订单金额，创建之后不可修改。
// Total 永远等于 Subtotal + ShippingFee - Discount
type OrderTotals struct {
	subtotal         int64
	shippingFee      int64
	productDiscount  int64
	shippingDiscount int64
}

func NewOrderTotals(subtotal, shippingFee, productDiscount, shippingDiscount int64) OrderTotals {
	return OrderTotals{
		subtotal:         subtotal,
		shippingFee:      shippingFee,
		productDiscount:  productDiscount,
		shippingDiscount: shippingDiscount,
	}
}

// SumItems 按行小计求和
func SumItems(items []OrderItem) int64 {
	var subtotal int64
	for _, it := range items {
		subtotal += it.LineTotal
	}
	return subtotal
}

func (t OrderTotals) Subtotal() int64 {
	return t.subtotal
}

// ShippingFee 优惠前的运费
func (t OrderTotals) ShippingFee() int64 {
	return t.shippingFee
}

func (t OrderTotals) ProductDiscount() int64 {
	return t.productDiscount
}

func (t OrderTotals) ShippingDiscount() int64 {
	return t.shippingDiscount
}

func (t OrderTotals) Discount() int64 {
	return t.productDiscount + t.shippingDiscount
}

func (t OrderTotals) Total() int64 {
	return t.subtotal + t.shippingFee - t.Discount()
}
