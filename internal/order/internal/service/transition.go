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
	"sort"
	"time"

	"github.com/ecodeclub/checkout/internal/inventory"
	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/payment"
	"github.com/ecodeclub/ekit/mapx"
	"github.com/gotomicro/ego/core/elog"
)

func (s *service) TransitionOrder(ctx context.Context, id int64, to domain.Status) (domain.Order, error) {
	if !to.Valid() || to == domain.StatusCancelled {
		s.metrics.transition("", string(to), ErrInvalidTransition)
		return domain.Order{}, fmt.Errorf("%w: 目标状态 %s", ErrInvalidTransition, to)
	}
	return s.transit(ctx, id, to, func(order domain.Order) bool {
		return order.Status.CanTransitionTo(to)
	})
}

func (s *service) CancelOrder(ctx context.Context, id int64) (domain.Order, error) {
	return s.transit(ctx, id, domain.StatusCancelled, func(order domain.Order) bool {
		return order.Status.CanCancel()
	})
}

func (s *service) CancelUserOrder(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	order, err := s.repo.FindBySNAndUID(ctx, sn, uid)
	if err != nil {
		return domain.Order{}, err
	}
	return s.CancelOrder(ctx, order.ID)
}

func (s *service) transit(ctx context.Context, id int64, to domain.Status, allowed func(order domain.Order) bool) (domain.Order, error) {
	var (
		order domain.Order
		from  domain.Status
	)
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		from = order.Status
		if !allowed(order) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}
		// 条件更新同时锁住订单行，并发流转只有一个能成功
		ok, err := s.repo.UpdateStatus(ctx, id, from, to)
		if err != nil {
			return persistenceErr(err)
		}
		if !ok {
			return fmt.Errorf("%w: 订单状态已被修改 %s -> %s", ErrInvalidTransition, from, to)
		}
		if err = s.applyEffects(ctx, &order, from, to); err != nil {
			return err
		}
		if err = s.repo.AppendHistory(ctx, id, from, to); err != nil {
			return persistenceErr(err)
		}
		order.Status = to
		order.Histories = append(order.Histories, domain.StatusHistory{
			OrderID: id,
			From:    from,
			To:      to,
			Ctime:   s.now(),
		})
		return nil
	})
	err = classify(err)
	s.metrics.transition(string(from), string(to), err)
	if err != nil {
		return domain.Order{}, err
	}
	s.afterTransition(ctx, order, from)
	return order, nil
}

func (s *service) applyEffects(ctx context.Context, order *domain.Order, from, to domain.Status) error {
	switch {
	case to == domain.StatusConfirmed:
		return s.decrementStock(ctx, order.Items)
	case to == domain.StatusCancelled && from == domain.StatusConfirmed:
		return s.incrementStock(ctx, order.Items)
	case to == domain.StatusDelivered && order.PaymentMethod == domain.PaymentMethodCOD:
		if err := s.markCODPaid(ctx, order.ID); err != nil {
			return err
		}
		if err := s.repo.UpdatePaymentStatus(ctx, order.ID, domain.PaymentStatusPaid); err != nil {
			return persistenceErr(err)
		}
		order.PaymentStatus = domain.PaymentStatusPaid
	}
	return nil
}

// decrementStock 任何一行库存不足都会让整个事务回滚，不会出现部分扣减
func (s *service) decrementStock(ctx context.Context, items []domain.OrderItem) error {
	itemsErr := &ItemsError{}
	quantities := stockQuantities(items)
	for _, key := range sortedKeys(quantities) {
		qty := quantities[key]
		err := s.ledger.Decrement(ctx, key, qty)
		if errors.Is(err, inventory.ErrInsufficientStock) {
			itemsErr.add(ItemViolation{
				ProductID: key.ProductID,
				VariantID: key.VariantID,
				Reason:    ReasonInsufficientStock,
				Requested: qty,
				Available: -1,
			})
			continue
		}
		if err != nil {
			return persistenceErr(err)
		}
	}
	if !itemsErr.empty() {
		return itemsErr
	}
	return nil
}

func (s *service) incrementStock(ctx context.Context, items []domain.OrderItem) error {
	quantities := stockQuantities(items)
	for _, key := range sortedKeys(quantities) {
		if err := s.ledger.Increment(ctx, key, quantities[key]); err != nil {
			return persistenceErr(err)
		}
	}
	return nil
}

func (s *service) markCODPaid(ctx context.Context, orderID int64) error {
	err := s.paymentSvc.MarkPaid(ctx, orderID, s.now())
	if !errors.Is(err, payment.ErrStatusConflict) {
		if err != nil {
			return persistenceErr(err)
		}
		return nil
	}
	// 已经是 PAID 的不算错误
	pmt, er := s.paymentSvc.FindByOrderID(ctx, orderID)
	if er != nil {
		return persistenceErr(er)
	}
	if pmt.Status != payment.StatusPaid {
		return fmt.Errorf("%w: 支付状态为 %s", ErrInvalidTransition, pmt.Status)
	}
	return nil
}

func stockQuantities(items []domain.OrderItem) map[inventory.StockKey]int64 {
	res := make(map[inventory.StockKey]int64, len(items))
	for _, it := range items {
		res[inventory.StockKey{ProductID: it.ProductID, VariantID: it.VariantID}] += it.Quantity
	}
	return res
}

// sortedKeys 固定加锁顺序，避免两个事务互相等待
func sortedKeys(m map[inventory.StockKey]int64) []inventory.StockKey {
	keys := mapx.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ProductID != keys[j].ProductID {
			return keys[i].ProductID < keys[j].ProductID
		}
		return keys[i].VariantID < keys[j].VariantID
	})
	return keys
}

func (s *service) CancelStalePendingOrders(ctx context.Context, before time.Time, limit int) (int, error) {
	orders, err := s.repo.FindStalePending(ctx, before, limit)
	if err != nil {
		return 0, err
	}
	cnt := 0
	for _, o := range orders {
		_, err = s.CancelOrder(ctx, o.ID)
		if errors.Is(err, ErrInvalidTransition) {
			// 期间被确认了
			continue
		}
		if err != nil {
			return cnt, err
		}
		cnt++
	}
	return cnt, nil
}

func (s *service) SyncPaymentStatus(ctx context.Context, uid int64, sn string, status string) error {
	ps := domain.PaymentStatus(status)
	if ps != domain.PaymentStatusPaid && ps != domain.PaymentStatusFailed {
		return fmt.Errorf("非法的支付状态 %s", status)
	}
	ok, err := s.repo.UpdatePaymentStatusBySN(ctx, sn, ps)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("订单支付状态已同步或订单不存在",
			elog.String("sn", sn),
			elog.Int64("uid", uid),
			elog.String("status", status))
	}
	return nil
}

// classify 业务错误原样返回，其余的都当作存储失败
func classify(err error) error {
	var itemsErr *ItemsError
	switch {
	case err == nil,
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrPersistence),
		errors.As(err, &itemsErr):
		return err
	}
	return persistenceErr(err)
}
