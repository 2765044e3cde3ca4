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

import "time"

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodOnline
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type Order struct {
	ID            int64
	SN            string
	UID           int64
	Status        Status
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	Totals        OrderTotals
	// Address 下单时的收货地址快照，之后用户修改地址不影响订单
	Address    AddressSnapshot
	CouponCode string
	Items      []OrderItem
	Histories  []StatusHistory
	Ctime      time.Time
	Utime      time.Time
}

// Timeline 每个状态最近一次发生的时间
func (o Order) Timeline() map[Status]time.Time {
	return Timeline(o.Histories)
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

// OrderItem 下单时商品信息的快照，创建之后不会再修改
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	VariantID   int64
	ProductName string
	VariantName string
	SKU         string
	UnitPrice   int64
	Quantity    int64
	LineTotal   int64
}

func NewOrderItem(productID, variantID int64, productName, variantName, sku string, unitPrice, quantity int64) OrderItem {
	return OrderItem{
		ProductID:   productID,
		VariantID:   variantID,
		ProductName: productName,
		VariantName: variantName,
		SKU:         sku,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		LineTotal:   unitPrice * quantity,
	}
}
