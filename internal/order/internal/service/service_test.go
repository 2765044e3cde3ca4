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
	"testing"
	"time"

	"github.com/ecodeclub/checkout/internal/address"
	addressmocks "github.com/ecodeclub/checkout/internal/address/mocks"
	"github.com/ecodeclub/checkout/internal/cart"
	cartmocks "github.com/ecodeclub/checkout/internal/cart/mocks"
	"github.com/ecodeclub/checkout/internal/coupon"
	couponmocks "github.com/ecodeclub/checkout/internal/coupon/mocks"
	"github.com/ecodeclub/checkout/internal/inventory"
	inventorymocks "github.com/ecodeclub/checkout/internal/inventory/mocks"
	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/checkout/internal/order/internal/event/mocks"
	mailermocks "github.com/ecodeclub/checkout/internal/order/internal/mailer/mocks"
	"github.com/ecodeclub/checkout/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/checkout/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/checkout/internal/payment"
	paymentmocks "github.com/ecodeclub/checkout/internal/payment/mocks"
	"github.com/ecodeclub/checkout/internal/pkg/sequencenumber"
	"github.com/ecodeclub/checkout/internal/product"
	productmocks "github.com/ecodeclub/checkout/internal/product/mocks"
	shippingmocks "github.com/ecodeclub/checkout/internal/shipping/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid int64 = 9

var now = time.Date(2024, 3, 5, 0, 0, 1, 5_000_000, time.Local)

type fakeTransactor struct{}

func (fakeTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mocks struct {
	repo     *repomocks.MockOrderRepository
	address  *addressmocks.MockService
	cart     *cartmocks.MockService
	product  *productmocks.MockService
	ledger   *inventorymocks.MockLedger
	coupon   *couponmocks.MockService
	shipping *shippingmocks.MockResolver
	payment  *paymentmocks.MockService
	notifier *evtmocks.MockNotifier
	mailer   *mailermocks.MockMailer
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:     repomocks.NewMockOrderRepository(ctrl),
		address:  addressmocks.NewMockService(ctrl),
		cart:     cartmocks.NewMockService(ctrl),
		product:  productmocks.NewMockService(ctrl),
		ledger:   inventorymocks.NewMockLedger(ctrl),
		coupon:   couponmocks.NewMockService(ctrl),
		shipping: shippingmocks.NewMockResolver(ctrl),
		payment:  paymentmocks.NewMockService(ctrl),
		notifier: evtmocks.NewMockNotifier(ctrl),
		mailer:   mailermocks.NewMockMailer(ctrl),
	}
}

func (m mocks) service() *service {
	svc := NewService(m.repo, fakeTransactor{}, m.address, m.cart, m.product, m.ledger, m.coupon,
		m.shipping, m.payment, sequencenumber.NewGenerator(), m.notifier, m.mailer, prometheus.NewRegistry()).(*service)
	svc.now = func() time.Time {
		return now
	}
	return svc
}

var (
	userAddress = address.Address{
		ID: 3, UID: uid, Receiver: "张三", Email: "buyer@example.com",
		DistrictID: 1442, WardCode: "20109", Detail: "1 Nguyen Hue",
	}
	cartLines = []cart.Item{
		{ID: 1, UID: uid, ProductID: 100, Quantity: 1},
		{ID: 2, UID: uid, ProductID: 200, VariantID: 21, Quantity: 2},
	}
	catalog = map[int64]product.Product{
		100: {
			ID: 100, SN: "TS-100", Name: "T恤", Status: product.StatusOnShelf,
			Price:     product.Price{List: 120000, Sale: 100000},
			Dimension: product.Dimension{Weight: 200, Length: 30, Width: 20, Height: 2},
		},
		200: {
			ID: 200, SN: "SH-200", Name: "鞋", Status: product.StatusOnShelf,
			Price:     product.Price{List: 90000},
			Dimension: product.Dimension{Weight: 800, Length: 33, Width: 22, Height: 12},
			Variants: []product.Variant{
				{ID: 21, ProductID: 200, SKU: "SH-200-42", Name: "42码", Status: product.StatusOnShelf,
					Price: product.Price{List: 50000}},
			},
		},
	}
	stocks = map[inventory.StockKey]int64{
		{ProductID: 100}:                5,
		{ProductID: 200, VariantID: 21}: 3,
	}
)

// expectPricing 地址、购物车、商品、库存都正常
func expectPricing(m mocks) {
	m.address.EXPECT().FindUserAddress(gomock.Any(), uid, int64(3)).Return(userAddress, nil)
	m.cart.EXPECT().FindSelectedItems(gomock.Any(), uid, []int64{1, 2}).Return(cartLines, nil)
	m.product.EXPECT().FindProducts(gomock.Any(), []int64{100, 200}).Return(catalog, nil)
	m.ledger.EXPECT().FindStocks(gomock.Any(), gomock.Any()).Return(stocks, nil)
}

func expectCommit(m mocks, orderID int64) {
	m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
		o.ID = orderID
		return o, nil
	})
	m.payment.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p payment.Payment) (payment.Payment, error) {
		p.ID = 1
		p.Status = payment.StatusPending
		return p, nil
	})
	m.cart.EXPECT().RemoveItems(gomock.Any(), uid, []int64{1, 2}).Return(nil)
}

func expectAfterCreated(m mocks) {
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
		if evt.Audience != event.AudienceAdmin || evt.Name != event.NameOrderCreated {
			return errors.New("非预期的事件")
		}
		return nil
	})
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
}

func TestService_CreateOrder(t *testing.T) {
	req := CreateOrderReq{
		UID:           uid,
		AddressID:     3,
		CartItemIDs:   []int64{1, 2},
		PaymentMethod: domain.PaymentMethodCOD,
	}
	testCases := []struct {
		name    string
		req     func() CreateOrderReq
		mock    func(m mocks)
		wantErr error
		assert  func(t *testing.T, order domain.Order, err error)
	}{
		{
			// 场景 A
			name: "没有优惠券",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				expectCommit(m, 11)
				expectAfterCreated(m)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(11), order.ID)
				assert.Equal(t, int64(200000), order.Totals.Subtotal())
				assert.Equal(t, int64(30000), order.Totals.ShippingFee())
				assert.Equal(t, int64(0), order.Totals.Discount())
				assert.Equal(t, int64(230000), order.Totals.Total())
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
				assert.Equal(t, "0000092024030500001005", order.SN)
				assert.Equal(t, "buyer@example.com", order.Address.Email)
				require.Len(t, order.Items, 2)
				assert.Equal(t, domain.NewOrderItem(100, 0, "T恤", "", "TS-100", 100000, 1), withoutOrderID(order.Items[0]))
				assert.Equal(t, domain.NewOrderItem(200, 21, "鞋", "42码", "SH-200-42", 50000, 2), withoutOrderID(order.Items[1]))
			},
		},
		{
			// 场景 B
			name: "商品金额券",
			req: func() CreateOrderReq {
				r := req
				r.CouponCode = "MINUS50K"
				return r
			},
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				m.coupon.EXPECT().ValidateCoupon(gomock.Any(), uid, "MINUS50K", int64(200000), int64(30000), now).
					Return(coupon.DiscountResult{CouponID: 7, Code: "MINUS50K", ProductDiscount: 50000}, nil)
				expectCommit(m, 12)
				m.coupon.EXPECT().Redeem(gomock.Any(), uid, int64(7), int64(12), now).Return(nil)
				expectAfterCreated(m)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(50000), order.Totals.ProductDiscount())
				assert.Equal(t, int64(0), order.Totals.ShippingDiscount())
				assert.Equal(t, int64(180000), order.Totals.Total())
				assert.Equal(t, "MINUS50K", order.CouponCode)
			},
		},
		{
			// 场景 C
			name: "运费百分比券",
			req: func() CreateOrderReq {
				r := req
				r.CouponCode = "SHIP50"
				return r
			},
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				m.coupon.EXPECT().ValidateCoupon(gomock.Any(), uid, "SHIP50", int64(200000), int64(30000), now).
					Return(coupon.DiscountResult{CouponID: 8, Code: "SHIP50", ShippingDiscount: 15000}, nil)
				expectCommit(m, 13)
				m.coupon.EXPECT().Redeem(gomock.Any(), uid, int64(8), int64(13), now).Return(nil)
				expectAfterCreated(m)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(15000), order.Totals.ShippingDiscount())
				assert.Equal(t, int64(200000+30000-15000), order.Totals.Total())
			},
		},
		{
			name: "使用客户端运费",
			req: func() CreateOrderReq {
				r := req
				r.ClientShippingFee = 25000
				return r
			},
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(25000), gomock.Any(), gomock.Any()).Return(int64(25000))
				expectCommit(m, 14)
				expectAfterCreated(m)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(225000), order.Totals.Total())
			},
		},
		{
			name: "地址不属于用户",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				m.address.EXPECT().FindUserAddress(gomock.Any(), uid, int64(3)).Return(address.Address{}, address.ErrAddressNotFound)
			},
			wantErr: ErrInvalidAddress,
		},
		{
			name: "购物车选择非法",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				m.address.EXPECT().FindUserAddress(gomock.Any(), uid, int64(3)).Return(userAddress, nil)
				m.cart.EXPECT().FindSelectedItems(gomock.Any(), uid, []int64{1, 2}).Return(nil, cart.ErrItemsNotFound)
			},
			wantErr: ErrEmptyCartSelection,
		},
		{
			name: "非法支付方式",
			req: func() CreateOrderReq {
				r := req
				r.PaymentMethod = "CARD"
				return r
			},
			mock:    func(m mocks) {},
			wantErr: ErrInvalidPaymentMethod,
		},
		{
			name: "商品下架和库存不足一起返回",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				m.address.EXPECT().FindUserAddress(gomock.Any(), uid, int64(3)).Return(userAddress, nil)
				m.cart.EXPECT().FindSelectedItems(gomock.Any(), uid, []int64{1, 2}).Return(cartLines, nil)
				offShelf := catalog[100]
				offShelf.Status = product.StatusOffShelf
				m.product.EXPECT().FindProducts(gomock.Any(), []int64{100, 200}).Return(map[int64]product.Product{
					100: offShelf,
					200: catalog[200],
				}, nil)
				m.ledger.EXPECT().FindStocks(gomock.Any(), gomock.Any()).Return(map[inventory.StockKey]int64{
					{ProductID: 100}:                5,
					{ProductID: 200, VariantID: 21}: 1,
				}, nil)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				var itemsErr *ItemsError
				require.ErrorAs(t, err, &itemsErr)
				assert.Equal(t, []ItemViolation{
					{ProductID: 100, Reason: ReasonProductUnavailable, Requested: 1},
					{ProductID: 200, VariantID: 21, Reason: ReasonInsufficientStock, Requested: 2, Available: 1},
				}, itemsErr.Violations)
			},
		},
		{
			name: "优惠券校验失败",
			req: func() CreateOrderReq {
				r := req
				r.CouponCode = "BIG"
				return r
			},
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				m.coupon.EXPECT().ValidateCoupon(gomock.Any(), uid, "BIG", int64(200000), int64(30000), now).
					Return(coupon.DiscountResult{}, &coupon.ValidationError{Code: "BIG", Reason: coupon.ReasonBelowMinimum})
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				var couponErr *CouponError
				require.ErrorAs(t, err, &couponErr)
				assert.Equal(t, coupon.ReasonBelowMinimum, couponErr.Reason)
				assert.Equal(t, "BIG", couponErr.Code)
			},
		},
		{
			name: "提交时优惠券被抢完",
			req: func() CreateOrderReq {
				r := req
				r.CouponCode = "MINUS50K"
				return r
			},
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				m.coupon.EXPECT().ValidateCoupon(gomock.Any(), uid, "MINUS50K", int64(200000), int64(30000), now).
					Return(coupon.DiscountResult{CouponID: 7, Code: "MINUS50K", ProductDiscount: 50000}, nil)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
					o.ID = 15
					return o, nil
				})
				m.payment.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payment.Payment{ID: 1}, nil)
				m.coupon.EXPECT().Redeem(gomock.Any(), uid, int64(7), int64(15), now).
					Return(&coupon.ValidationError{Code: "#7", Reason: coupon.ReasonUsageLimitReached})
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				var couponErr *CouponError
				require.ErrorAs(t, err, &couponErr)
				assert.Equal(t, coupon.ReasonUsageLimitReached, couponErr.Reason)
			},
		},
		{
			name: "订单号冲突后重试成功",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				first := m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(domain.Order{}, repository.ErrDuplicatedSN)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
					o.ID = 16
					return o, nil
				}).After(first)
				m.payment.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payment.Payment{ID: 1}, nil)
				m.cart.EXPECT().RemoveItems(gomock.Any(), uid, []int64{1, 2}).Return(nil)
				expectAfterCreated(m)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, "0000092024030500001006", order.SN)
			},
		},
		{
			name: "订单号一直冲突",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(domain.Order{}, repository.ErrDuplicatedSN).Times(maxSNAttempts)
			},
			wantErr: repository.ErrDuplicatedSN,
		},
		{
			name: "删除购物车失败",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
					o.ID = 17
					return o, nil
				})
				m.payment.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payment.Payment{ID: 1}, nil)
				m.cart.EXPECT().RemoveItems(gomock.Any(), uid, []int64{1, 2}).Return(errors.New("mock db error"))
			},
			wantErr: ErrPersistence,
		},
		{
			name: "购物车行被并发的订单用掉",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
					o.ID = 17
					return o, nil
				})
				m.payment.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payment.Payment{ID: 1}, nil)
				m.cart.EXPECT().RemoveItems(gomock.Any(), uid, []int64{1, 2}).
					Return(fmt.Errorf("%w: 实际删除 0 个", cart.ErrItemsNotFound))
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				assert.ErrorIs(t, err, ErrEmptyCartSelection)
				assert.NotErrorIs(t, err, ErrPersistence)
				assert.Zero(t, order.ID)
			},
		},
		{
			name: "通知和邮件失败不影响下单",
			req:  func() CreateOrderReq { return req },
			mock: func(m mocks) {
				expectPricing(m)
				m.shipping.EXPECT().ResolveFee(gomock.Any(), int64(0), gomock.Any(), gomock.Any()).Return(int64(30000))
				expectCommit(m, 18)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
				m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(18), order.ID)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			order, err := m.service().CreateOrder(context.Background(), tc.req())
			if tc.assert != nil {
				tc.assert(t, order, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func withoutOrderID(item domain.OrderItem) domain.OrderItem {
	item.OrderID = 0
	return item
}

func pendingOrder(status domain.Status, method domain.PaymentMethod) domain.Order {
	return domain.Order{
		ID:            21,
		SN:            "0000092024030500001005",
		UID:           uid,
		Status:        status,
		PaymentStatus: domain.PaymentStatusPending,
		PaymentMethod: method,
		Totals:        domain.NewOrderTotals(200000, 30000, 0, 0),
		Address:       domain.AddressSnapshot{Email: "buyer@example.com"},
		Items: []domain.OrderItem{
			domain.NewOrderItem(200, 21, "鞋", "42码", "SH-200-42", 50000, 2),
			domain.NewOrderItem(100, 0, "T恤", "", "TS-100", 100000, 1),
		},
	}
}

func expectAfterTransition(m mocks, withMail bool) {
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	if withMail {
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	}
}

func TestService_TransitionOrder(t *testing.T) {
	testCases := []struct {
		name    string
		to      domain.Status
		mock    func(m mocks)
		wantErr error
		assert  func(t *testing.T, order domain.Order, err error)
	}{
		{
			name: "确认订单扣减库存",
			to:   domain.StatusConfirmed,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusPending, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusPending, domain.StatusConfirmed).Return(true, nil)
				// 按照 (productID, variantID) 排序扣减
				gomock.InOrder(
					m.ledger.EXPECT().Decrement(gomock.Any(), inventory.StockKey{ProductID: 100}, int64(1)).Return(nil),
					m.ledger.EXPECT().Decrement(gomock.Any(), inventory.StockKey{ProductID: 200, VariantID: 21}, int64(2)).Return(nil),
				)
				m.repo.EXPECT().AppendHistory(gomock.Any(), int64(21), domain.StatusPending, domain.StatusConfirmed).Return(nil)
				expectAfterTransition(m, true)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.StatusConfirmed, order.Status)
				assert.Equal(t, now, order.Timeline()[domain.StatusConfirmed])
			},
		},
		{
			name: "确认订单时库存不足",
			to:   domain.StatusConfirmed,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusPending, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusPending, domain.StatusConfirmed).Return(true, nil)
				m.ledger.EXPECT().Decrement(gomock.Any(), inventory.StockKey{ProductID: 100}, int64(1)).Return(nil)
				m.ledger.EXPECT().Decrement(gomock.Any(), inventory.StockKey{ProductID: 200, VariantID: 21}, int64(2)).
					Return(inventory.ErrInsufficientStock)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				var itemsErr *ItemsError
				require.ErrorAs(t, err, &itemsErr)
				assert.Equal(t, []ItemViolation{
					{ProductID: 200, VariantID: 21, Reason: ReasonInsufficientStock, Requested: 2, Available: -1},
				}, itemsErr.Violations)
			},
		},
		{
			name: "发货",
			to:   domain.StatusProcessing,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusConfirmed, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusConfirmed, domain.StatusProcessing).Return(true, nil)
				m.repo.EXPECT().AppendHistory(gomock.Any(), int64(21), domain.StatusConfirmed, domain.StatusProcessing).Return(nil)
				expectAfterTransition(m, true)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.StatusProcessing, order.Status)
			},
		},
		{
			name: "货到付款签收后标记已支付",
			to:   domain.StatusDelivered,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusProcessing, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusProcessing, domain.StatusDelivered).Return(true, nil)
				m.payment.EXPECT().MarkPaid(gomock.Any(), int64(21), now).Return(nil)
				m.repo.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(21), domain.PaymentStatusPaid).Return(nil)
				m.repo.EXPECT().AppendHistory(gomock.Any(), int64(21), domain.StatusProcessing, domain.StatusDelivered).Return(nil)
				expectAfterTransition(m, true)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.StatusDelivered, order.Status)
				assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
			},
		},
		{
			name: "在线支付签收不修改支付状态",
			to:   domain.StatusDelivered,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusProcessing, domain.PaymentMethodOnline), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusProcessing, domain.StatusDelivered).Return(true, nil)
				m.repo.EXPECT().AppendHistory(gomock.Any(), int64(21), domain.StatusProcessing, domain.StatusDelivered).Return(nil)
				expectAfterTransition(m, true)
			},
			assert: func(t *testing.T, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
			},
		},
		{
			name: "重复选择当前状态",
			to:   domain.StatusConfirmed,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusConfirmed, domain.PaymentMethodCOD), nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "跳过中间状态",
			to:   domain.StatusDelivered,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusPending, domain.PaymentMethodCOD), nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "已签收不能再流转",
			to:   domain.StatusProcessing,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusDelivered, domain.PaymentMethodCOD), nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "不能通过流转取消",
			to:      domain.StatusCancelled,
			mock:    func(m mocks) {},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "并发流转失败",
			to:   domain.StatusConfirmed,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusPending, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusPending, domain.StatusConfirmed).Return(false, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "订单不存在",
			to:   domain.StatusConfirmed,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(domain.Order{}, repository.ErrOrderNotFound)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name: "写入状态记录失败",
			to:   domain.StatusProcessing,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusConfirmed, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusConfirmed, domain.StatusProcessing).Return(true, nil)
				m.repo.EXPECT().AppendHistory(gomock.Any(), int64(21), domain.StatusConfirmed, domain.StatusProcessing).Return(errors.New("mock db error"))
			},
			wantErr: ErrPersistence,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			order, err := m.service().TransitionOrder(context.Background(), 21, tc.to)
			if tc.assert != nil {
				tc.assert(t, order, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_CancelOrder(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "已确认的订单取消后归还库存",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusConfirmed, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusConfirmed, domain.StatusCancelled).Return(true, nil)
				gomock.InOrder(
					m.ledger.EXPECT().Increment(gomock.Any(), inventory.StockKey{ProductID: 100}, int64(1)).Return(nil),
					m.ledger.EXPECT().Increment(gomock.Any(), inventory.StockKey{ProductID: 200, VariantID: 21}, int64(2)).Return(nil),
				)
				m.repo.EXPECT().AppendHistory(gomock.Any(), int64(21), domain.StatusConfirmed, domain.StatusCancelled).Return(nil)
				expectAfterTransition(m, true)
			},
		},
		{
			name: "待确认的订单取消不动库存",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusPending, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusPending, domain.StatusCancelled).Return(true, nil)
				m.repo.EXPECT().AppendHistory(gomock.Any(), int64(21), domain.StatusPending, domain.StatusCancelled).Return(nil)
				expectAfterTransition(m, true)
			},
		},
		{
			name: "配送中不能取消",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusProcessing, domain.PaymentMethodCOD), nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "已取消不能再取消",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusCancelled, domain.PaymentMethodCOD), nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "归还库存失败",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusConfirmed, domain.PaymentMethodCOD), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusConfirmed, domain.StatusCancelled).Return(true, nil)
				m.ledger.EXPECT().Increment(gomock.Any(), inventory.StockKey{ProductID: 100}, int64(1)).Return(inventory.ErrStockNotFound)
			},
			wantErr: ErrPersistence,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			order, err := m.service().CancelOrder(context.Background(), 21)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, domain.StatusCancelled, order.Status)
			}
		})
	}
}

func TestService_CancelStalePendingOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	before := now.Add(-30 * time.Minute)
	m.repo.EXPECT().FindStalePending(gomock.Any(), before, 10).Return([]domain.Order{{ID: 21}, {ID: 22}}, nil)

	m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingOrder(domain.StatusPending, domain.PaymentMethodCOD), nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(21), domain.StatusPending, domain.StatusCancelled).Return(true, nil)
	m.repo.EXPECT().AppendHistory(gomock.Any(), int64(21), domain.StatusPending, domain.StatusCancelled).Return(nil)
	expectAfterTransition(m, true)

	// 22 在查询之后被确认了
	confirmed := pendingOrder(domain.StatusConfirmed, domain.PaymentMethodCOD)
	confirmed.ID = 22
	m.repo.EXPECT().FindByID(gomock.Any(), int64(22)).Return(confirmed, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(22), domain.StatusConfirmed, domain.StatusCancelled).Return(false, nil)

	cnt, err := m.service().CancelStalePendingOrders(context.Background(), before, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)
}

func TestService_SyncPaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().UpdatePaymentStatusBySN(gomock.Any(), "SN1", domain.PaymentStatusPaid).Return(true, nil)
	svc := m.service()
	require.NoError(t, svc.SyncPaymentStatus(context.Background(), uid, "SN1", "PAID"))
	assert.Error(t, svc.SyncPaymentStatus(context.Background(), uid, "SN1", "PENDING"))
}

func TestService_ListUserOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().ListByUID(gomock.Any(), uid, 0, 2).Return([]domain.Order{{ID: 2}, {ID: 1}}, nil)
	m.repo.EXPECT().CountByUID(gomock.Any(), uid).Return(int64(5), nil)
	orders, total, err := m.service().ListUserOrders(context.Background(), uid, 0, 2)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, int64(5), total)
}
