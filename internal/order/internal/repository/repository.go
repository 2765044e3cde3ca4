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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("订单不存在")
	ErrDuplicatedSN  = dao.ErrDuplicatedSN
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/order.mock.go OrderRepository
type OrderRepository interface {
	// CreateOrder 写入订单、订单项以及初始的状态记录
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) (bool, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	UpdatePaymentStatusBySN(ctx context.Context, sn string, status domain.PaymentStatus) (bool, error)
	AppendHistory(ctx context.Context, orderID int64, from, to domain.Status) error

	// FindByID 包含订单项和状态记录
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySNAndUID(ctx context.Context, sn string, uid int64) (domain.Order, error)
	// ListByUID 不包含订单项
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	FindStalePending(ctx context.Context, before time.Time, limit int) ([]domain.Order, error)
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{
		dao: d,
	}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	items := slice.Map(order.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId:   src.ProductID,
			VariantId:   src.VariantID,
			ProductName: src.ProductName,
			VariantName: src.VariantName,
			SKU:         src.SKU,
			UnitPrice:   src.UnitPrice,
			Quantity:    src.Quantity,
			LineTotal:   src.LineTotal,
		}
	})
	id, err := o.dao.CreateOrder(ctx, o.toEntity(order), items)
	if err != nil {
		if errors.Is(err, dao.ErrDuplicatedSN) {
			return domain.Order{}, err
		}
		return domain.Order{}, errors.Wrap(err, "创建订单失败")
	}
	order.ID = id
	for i := range order.Items {
		order.Items[i].OrderID = id
	}
	err = o.dao.AppendHistory(ctx, dao.OrderStatusHistory{
		OrderId: id,
		Status:  string(order.Status),
	})
	if err != nil {
		return domain.Order{}, errors.Wrap(err, "写入订单初始状态失败")
	}
	return order, nil
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) (bool, error) {
	ok, err := o.dao.UpdateStatus(ctx, id, string(from), string(to))
	return ok, errors.Wrapf(err, "更新订单状态失败 id = %d", id)
}

func (o *orderRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return errors.Wrapf(o.dao.UpdatePaymentStatus(ctx, id, string(status)), "更新订单支付状态失败 id = %d", id)
}

func (o *orderRepository) UpdatePaymentStatusBySN(ctx context.Context, sn string, status domain.PaymentStatus) (bool, error) {
	ok, err := o.dao.UpdatePaymentStatusBySN(ctx, sn, string(status))
	return ok, errors.Wrapf(err, "更新订单支付状态失败 sn = %s", sn)
}

func (o *orderRepository) AppendHistory(ctx context.Context, orderID int64, from, to domain.Status) error {
	err := o.dao.AppendHistory(ctx, dao.OrderStatusHistory{
		OrderId:    orderID,
		FromStatus: string(from),
		Status:     string(to),
	})
	return errors.Wrapf(err, "写入订单状态记录失败 id = %d", orderID)
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, o.wrapFindErr(err)
	}
	return o.withDetails(ctx, order)
}

func (o *orderRepository) FindBySNAndUID(ctx context.Context, sn string, uid int64) (domain.Order, error) {
	order, err := o.dao.FindBySNAndUID(ctx, sn, uid)
	if err != nil {
		return domain.Order{}, o.wrapFindErr(err)
	}
	return o.withDetails(ctx, order)
}

func (o *orderRepository) wrapFindErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return errors.Wrap(err, "查找订单失败")
}

func (o *orderRepository) withDetails(ctx context.Context, order dao.Order) (domain.Order, error) {
	items, err := o.dao.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, errors.Wrap(err, "查找订单项失败")
	}
	histories, err := o.dao.FindHistoriesByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, errors.Wrap(err, "查找订单状态记录失败")
	}
	res := o.toDomain(order)
	res.Items = slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
		return domain.OrderItem{
			ID:          src.Id,
			OrderID:     src.OrderId,
			ProductID:   src.ProductId,
			VariantID:   src.VariantId,
			ProductName: src.ProductName,
			VariantName: src.VariantName,
			SKU:         src.SKU,
			UnitPrice:   src.UnitPrice,
			Quantity:    src.Quantity,
			LineTotal:   src.LineTotal,
		}
	})
	res.Histories = slice.Map(histories, func(idx int, src dao.OrderStatusHistory) domain.StatusHistory {
		return domain.StatusHistory{
			ID:      src.Id,
			OrderID: src.OrderId,
			From:    domain.Status(src.FromStatus),
			To:      domain.Status(src.Status),
			Ctime:   time.UnixMilli(src.Ctime),
		}
	})
	return res, nil
}

func (o *orderRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "查找用户订单失败")
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), nil
}

func (o *orderRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	cnt, err := o.dao.CountByUID(ctx, uid)
	return cnt, errors.Wrap(err, "统计用户订单失败")
}

func (o *orderRepository) FindStalePending(ctx context.Context, before time.Time, limit int) ([]domain.Order, error) {
	orders, err := o.dao.FindStalePending(ctx, before.UnixMilli(), limit)
	if err != nil {
		return nil, errors.Wrap(err, "查找超时订单失败")
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), nil
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	t := order.Totals
	return dao.Order{
		Id:               order.ID,
		SN:               order.SN,
		UID:              order.UID,
		Status:           string(order.Status),
		PaymentStatus:    string(order.PaymentStatus),
		PaymentMethod:    string(order.PaymentMethod),
		Subtotal:         t.Subtotal(),
		ShippingFee:      t.ShippingFee(),
		ProductDiscount:  t.ProductDiscount(),
		ShippingDiscount: t.ShippingDiscount(),
		DiscountAmount:   t.Discount(),
		TotalAmount:      t.Total(),
		Address: sqlx.JsonColumn[dao.AddressSnapshot]{
			Val:   dao.AddressSnapshot(order.Address),
			Valid: true,
		},
		CouponCode: order.CouponCode,
	}
}

func (o *orderRepository) toDomain(order dao.Order) domain.Order {
	return domain.Order{
		ID:            order.Id,
		SN:            order.SN,
		UID:           order.UID,
		Status:        domain.Status(order.Status),
		PaymentStatus: domain.PaymentStatus(order.PaymentStatus),
		PaymentMethod: domain.PaymentMethod(order.PaymentMethod),
		// 总额由各项重新计算，不信任存储的冗余值
		Totals:     domain.NewOrderTotals(order.Subtotal, order.ShippingFee, order.ProductDiscount, order.ShippingDiscount),
		Address:    domain.AddressSnapshot(order.Address.Val),
		CouponCode: order.CouponCode,
		Ctime:      time.UnixMilli(order.Ctime),
		Utime:      time.UnixMilli(order.Utime),
	}
}
