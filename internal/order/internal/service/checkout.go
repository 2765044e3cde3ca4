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
	"time"

	"github.com/ecodeclub/checkout/internal/address"
	"github.com/ecodeclub/checkout/internal/cart"
	"github.com/ecodeclub/checkout/internal/coupon"
	"github.com/ecodeclub/checkout/internal/inventory"
	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/repository"
	"github.com/ecodeclub/checkout/internal/payment"
	"github.com/ecodeclub/checkout/internal/product"
	"github.com/ecodeclub/checkout/internal/shipping"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// 订单号冲突时整体重试的次数上限
const maxSNAttempts = 3

func (s *service) CreateOrder(ctx context.Context, req CreateOrderReq) (domain.Order, error) {
	order, err := s.createOrder(ctx, req)
	s.metrics.checkout(err)
	if err != nil {
		return domain.Order{}, err
	}
	s.afterCreated(ctx, order)
	return order, nil
}

func (s *service) createOrder(ctx context.Context, req CreateOrderReq) (domain.Order, error) {
	if !req.PaymentMethod.Valid() {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, req.PaymentMethod)
	}
	addr, err := s.addressSvc.FindUserAddress(ctx, req.UID, req.AddressID)
	if errors.Is(err, address.ErrAddressNotFound) {
		return domain.Order{}, fmt.Errorf("%w: addressID = %d", ErrInvalidAddress, req.AddressID)
	}
	if err != nil {
		return domain.Order{}, persistenceErr(err)
	}
	lines, err := s.cartSvc.FindSelectedItems(ctx, req.UID, req.CartItemIDs)
	if errors.Is(err, cart.ErrItemsNotFound) {
		return domain.Order{}, fmt.Errorf("%w: %w", ErrEmptyCartSelection, err)
	}
	if err != nil {
		return domain.Order{}, persistenceErr(err)
	}

	items, parcel, err := s.priceLines(ctx, lines)
	if err != nil {
		return domain.Order{}, err
	}

	// 必须在开启事务之前拿到运费
	fee := s.shipping.ResolveFee(ctx, req.ClientShippingFee, shipping.Destination{
		DistrictID: addr.DistrictID,
		WardCode:   addr.WardCode,
	}, parcel)

	now := s.now()
	subtotal := domain.SumItems(items)
	var discount coupon.DiscountResult
	if req.CouponCode != "" {
		discount, err = s.couponSvc.ValidateCoupon(ctx, req.UID, req.CouponCode, subtotal, fee, now)
		if err != nil {
			return domain.Order{}, s.wrapCouponErr(req.CouponCode, err)
		}
	}

	order := domain.Order{
		UID:           req.UID,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		Totals:        domain.NewOrderTotals(subtotal, fee, discount.ProductDiscount, discount.ShippingDiscount),
		Address: domain.AddressSnapshot{
			Receiver:     addr.Receiver,
			Phone:        addr.Phone,
			Email:        addr.Email,
			ProvinceID:   addr.ProvinceID,
			ProvinceName: addr.ProvinceName,
			DistrictID:   addr.DistrictID,
			DistrictName: addr.DistrictName,
			WardCode:     addr.WardCode,
			WardName:     addr.WardName,
			Detail:       addr.Detail,
		},
		CouponCode: discount.Code,
		Items:      items,
	}
	lineIDs := slice.Map(lines, func(idx int, src cart.Item) int64 {
		return src.ID
	})

	for attempt := 0; ; attempt++ {
		// 每次重试都往后错开一毫秒，保证生成新的订单号
		order.SN = s.sn.GenerateAt(req.UID, now.Add(time.Duration(attempt)*time.Millisecond))
		created, err := s.commit(ctx, order, discount.CouponID, lineIDs, now)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, repository.ErrDuplicatedSN) || attempt+1 >= maxSNAttempts {
			return domain.Order{}, err
		}
		s.logger.Warn("订单号冲突，重新生成",
			elog.String("sn", order.SN),
			elog.Int64("uid", req.UID),
			elog.Int("attempt", attempt+1))
	}
}

// priceLines 校验商品是否可售以及库存，按当前价格生成订单项快照。
// 所有不满足条件的行会一起返回
func (s *service) priceLines(ctx context.Context, lines []cart.Item) ([]domain.OrderItem, []shipping.Item, error) {
	productIDs := slice.Map(lines, func(idx int, src cart.Item) int64 {
		return src.ProductID
	})
	products, err := s.productSvc.FindProducts(ctx, productIDs)
	if err != nil {
		return nil, nil, persistenceErr(err)
	}
	keys := slice.Map(lines, func(idx int, src cart.Item) inventory.StockKey {
		return inventory.StockKey{ProductID: src.ProductID, VariantID: src.VariantID}
	})
	stocks, err := s.ledger.FindStocks(ctx, keys)
	if err != nil {
		return nil, nil, persistenceErr(err)
	}

	var (
		itemsErr = &ItemsError{}
		items    = make([]domain.OrderItem, 0, len(lines))
		parcel   = make([]shipping.Item, 0, len(lines))
	)
	for _, line := range lines {
		violation := ItemViolation{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Requested: line.Quantity,
		}
		p, ok := products[line.ProductID]
		if !ok || !p.Sellable() {
			violation.Reason = ReasonProductUnavailable
			itemsErr.add(violation)
			continue
		}
		var (
			variantName string
			sku         = p.SN
			price       = p.Price
			dim         = p.Dimension
		)
		if line.VariantID != 0 {
			v, ok := p.FindVariant(line.VariantID)
			if !ok || !v.Sellable() {
				violation.Reason = ReasonProductUnavailable
				itemsErr.add(violation)
				continue
			}
			variantName, sku = v.Name, v.SKU
			// 规格有自己的价格时覆盖商品价格
			if v.Price.Unit() > 0 {
				price = v.Price
			}
			dim = mergeDimension(v.Dimension, p.Dimension)
		}
		available := stocks[inventory.StockKey{ProductID: line.ProductID, VariantID: line.VariantID}]
		if line.Quantity > available {
			violation.Reason = ReasonInsufficientStock
			violation.Available = available
			itemsErr.add(violation)
			continue
		}
		items = append(items, domain.NewOrderItem(p.ID, line.VariantID, p.Name, variantName, sku, price.Unit(), line.Quantity))
		parcel = append(parcel, shipping.Item{
			Weight:   dim.Weight,
			Length:   dim.Length,
			Width:    dim.Width,
			Height:   dim.Height,
			Quantity: line.Quantity,
		})
	}
	if !itemsErr.empty() {
		return nil, nil, itemsErr
	}
	return items, parcel, nil
}

func mergeDimension(v, p product.Dimension) product.Dimension {
	pick := func(a, b int64) int64 {
		if a > 0 {
			return a
		}
		return b
	}
	return product.Dimension{
		Weight: pick(v.Weight, p.Weight),
		Length: pick(v.Length, p.Length),
		Width:  pick(v.Width, p.Width),
		Height: pick(v.Height, p.Height),
	}
}

// commit 订单、订单项、支付、初始状态、优惠券核销、删除购物车在同一个事务里
func (s *service) commit(ctx context.Context, order domain.Order, couponID int64, lineIDs []int64, now time.Time) (domain.Order, error) {
	var created domain.Order
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.CreateOrder(ctx, order)
		if err != nil {
			return err
		}
		_, err = s.paymentSvc.CreatePayment(ctx, payment.Payment{
			OrderID: created.ID,
			OrderSN: created.SN,
			UID:     created.UID,
			Method:  payment.Method(created.PaymentMethod),
			Amount:  created.Totals.Total(),
		})
		if err != nil {
			return fmt.Errorf("创建支付记录失败: %w", err)
		}
		if couponID > 0 {
			err = s.couponSvc.Redeem(ctx, created.UID, couponID, created.ID, now)
			if err != nil {
				return s.wrapCouponErr(created.CouponCode, err)
			}
		}
		return s.cartSvc.RemoveItems(ctx, created.UID, lineIDs)
	})
	if err == nil {
		return created, nil
	}
	var couponErr *CouponError
	switch {
	case errors.As(err, &couponErr), errors.Is(err, repository.ErrDuplicatedSN):
		return domain.Order{}, err
	case errors.Is(err, cart.ErrItemsNotFound):
		// 同一批购物车行被并发的另一个下单请求抢先用掉了
		return domain.Order{}, fmt.Errorf("%w: %w", ErrEmptyCartSelection, err)
	}
	return domain.Order{}, persistenceErr(err)
}

func (s *service) wrapCouponErr(code string, err error) error {
	var ve *coupon.ValidationError
	if errors.As(err, &ve) {
		return newCouponError(code, ve)
	}
	return persistenceErr(err)
}
