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

package web

import (
	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
)

// CreateOrderReq 创建订单请求
type CreateOrderReq struct {
	RequestID     string  `json:"requestID"` // 请求去重,防止订单重复提交
	AddressID     int64   `json:"addressID"`
	CartItemIDs   []int64 `json:"cartItemIDs"`
	PaymentMethod string  `json:"paymentMethod"` // COD 或者 ONLINE
	CouponCode    string  `json:"couponCode,omitempty"`
	// ShippingFee 前端已经算好的运费，为 0 时由服务端查询
	ShippingFee int64 `json:"shippingFee,omitempty"`
}

type CreateOrderResp struct {
	OrderSN     string `json:"orderSN"`
	TotalAmount int64  `json:"totalAmount"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type OrderIDReq struct {
	ID int64 `json:"id"`
}

type TransitionOrderReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ListOrdersReq 分页查询用户所有订单
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type Order struct {
	ID               int64            `json:"id,omitempty"`
	SN               string           `json:"sn"`
	Status           string           `json:"status"`
	PaymentStatus    string           `json:"paymentStatus"`
	PaymentMethod    string           `json:"paymentMethod"`
	Subtotal         int64            `json:"subtotal"`
	ShippingFee      int64            `json:"shippingFee"`
	ProductDiscount  int64            `json:"productDiscount"`
	ShippingDiscount int64            `json:"shippingDiscount"`
	DiscountAmount   int64            `json:"discountAmount"`
	TotalAmount      int64            `json:"totalAmount"`
	CouponCode       string           `json:"couponCode,omitempty"`
	Address          Address          `json:"address"`
	Items            []OrderItem      `json:"items,omitempty"`
	Timeline         map[string]int64 `json:"timeline,omitempty"`
	Ctime            int64            `json:"ctime"`
	Utime            int64            `json:"utime"`
}

type Address struct {
	Receiver string `json:"receiver"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	District string `json:"district"`
	Ward     string `json:"ward"`
	Detail   string `json:"detail"`
}

type OrderItem struct {
	ProductID   int64  `json:"productID"`
	VariantID   int64  `json:"variantID,omitempty"`
	ProductName string `json:"productName"`
	VariantName string `json:"variantName,omitempty"`
	SKU         string `json:"sku"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int64  `json:"quantity"`
	LineTotal   int64  `json:"lineTotal"`
}

type ItemViolation struct {
	ProductID int64  `json:"productID"`
	VariantID int64  `json:"variantID,omitempty"`
	Reason    string `json:"reason"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}

type CouponViolation struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

func toViolationVOs(vs []service.ItemViolation) []ItemViolation {
	return slice.Map(vs, func(idx int, src service.ItemViolation) ItemViolation {
		return ItemViolation{
			ProductID: src.ProductID,
			VariantID: src.VariantID,
			Reason:    string(src.Reason),
			Requested: src.Requested,
			Available: src.Available,
		}
	})
}

func toOrderVO(order domain.Order) Order {
	vo := Order{
		ID:               order.ID,
		SN:               order.SN,
		Status:           string(order.Status),
		PaymentStatus:    string(order.PaymentStatus),
		PaymentMethod:    string(order.PaymentMethod),
		Subtotal:         order.Totals.Subtotal(),
		ShippingFee:      order.Totals.ShippingFee(),
		ProductDiscount:  order.Totals.ProductDiscount(),
		ShippingDiscount: order.Totals.ShippingDiscount(),
		DiscountAmount:   order.Totals.Discount(),
		TotalAmount:      order.Totals.Total(),
		CouponCode:       order.CouponCode,
		Address: Address{
			Receiver: order.Address.Receiver,
			Phone:    order.Address.Phone,
			Province: order.Address.ProvinceName,
			District: order.Address.DistrictName,
			Ward:     order.Address.WardName,
			Detail:   order.Address.Detail,
		},
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID:   src.ProductID,
				VariantID:   src.VariantID,
				ProductName: src.ProductName,
				VariantName: src.VariantName,
				SKU:         src.SKU,
				UnitPrice:   src.UnitPrice,
				Quantity:    src.Quantity,
				LineTotal:   src.LineTotal,
			}
		}),
		Ctime: order.Ctime.UnixMilli(),
		Utime: order.Utime.UnixMilli(),
	}
	if len(order.Histories) > 0 {
		vo.Timeline = make(map[string]int64, len(order.Histories))
		for status, t := range order.Timeline() {
			vo.Timeline[string(status)] = t.UnixMilli()
		}
	}
	return vo
}
