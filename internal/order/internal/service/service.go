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
	"time"

	"github.com/ecodeclub/checkout/internal/address"
	"github.com/ecodeclub/checkout/internal/cart"
	"github.com/ecodeclub/checkout/internal/coupon"
	"github.com/ecodeclub/checkout/internal/inventory"
	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/event"
	"github.com/ecodeclub/checkout/internal/order/internal/mailer"
	"github.com/ecodeclub/checkout/internal/order/internal/repository"
	"github.com/ecodeclub/checkout/internal/payment"
	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/ecodeclub/checkout/internal/pkg/sequencenumber"
	"github.com/ecodeclub/checkout/internal/product"
	"github.com/ecodeclub/checkout/internal/shipping"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

type CreateOrderReq struct {
	UID         int64
	AddressID   int64
	CartItemIDs []int64
	// PaymentMethod COD 或者 ONLINE
	PaymentMethod domain.PaymentMethod
	// CouponCode 为空表示不使用优惠券
	CouponCode string
	// ClientShippingFee 大于 0 的时候直接使用，不再查询物流商
	ClientShippingFee int64
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderReq) (domain.Order, error)
	// TransitionOrder 只能按照 PENDING -> CONFIRMED -> PROCESSING -> DELIVERED 向前流转
	TransitionOrder(ctx context.Context, id int64, to domain.Status) (domain.Order, error)
	// CancelOrder 只有 PENDING 和 CONFIRMED 的订单可以取消
	CancelOrder(ctx context.Context, id int64) (domain.Order, error)
	// CancelUserOrder 用户取消自己的订单
	CancelUserOrder(ctx context.Context, uid int64, sn string) (domain.Order, error)
	// CancelStalePendingOrders 取消创建时间早于 before 的 PENDING 订单，返回取消的数量
	CancelStalePendingOrders(ctx context.Context, before time.Time, limit int) (int, error)
	// SyncPaymentStatus 支付回调之后同步订单上的支付状态
	SyncPaymentStatus(ctx context.Context, uid int64, sn string, status string) error

	FindOrder(ctx context.Context, id int64) (domain.Order, error)
	FindUserOrder(ctx context.Context, uid int64, sn string) (domain.Order, error)
	ListUserOrders(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
}

type service struct {
	repo       repository.OrderRepository
	tx         database.Transactor
	addressSvc address.Service
	cartSvc    cart.Service
	productSvc product.Service
	ledger     inventory.Ledger
	couponSvc  coupon.Service
	shipping   shipping.Resolver
	paymentSvc payment.Service
	sn         *sequencenumber.Generator
	notifier   event.Notifier
	mailer     mailer.Mailer
	metrics    *metrics
	logger     *elog.Component
	now        func() time.Time
}

func NewService(repo repository.OrderRepository,
	tx database.Transactor,
	addressSvc address.Service,
	cartSvc cart.Service,
	productSvc product.Service,
	ledger inventory.Ledger,
	couponSvc coupon.Service,
	shippingResolver shipping.Resolver,
	paymentSvc payment.Service,
	sn *sequencenumber.Generator,
	notifier event.Notifier,
	m mailer.Mailer,
	reg prometheus.Registerer) Service {
	return &service{
		repo:       repo,
		tx:         tx,
		addressSvc: addressSvc,
		cartSvc:    cartSvc,
		productSvc: productSvc,
		ledger:     ledger,
		couponSvc:  couponSvc,
		shipping:   shippingResolver,
		paymentSvc: paymentSvc,
		sn:         sn,
		notifier:   notifier,
		mailer:     m,
		metrics:    newMetrics(reg),
		logger:     elog.DefaultLogger,
		now:        time.Now,
	}
}

func (s *service) FindOrder(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindUserOrder(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	return s.repo.FindBySNAndUID(ctx, sn, uid)
}

func (s *service) ListUserOrders(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUID(ctx, uid)
		return err
	})
	return orders, total, eg.Wait()
}
