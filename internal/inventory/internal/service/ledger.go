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

	"github.com/ecodeclub/checkout/internal/inventory/internal/domain"
	"github.com/ecodeclub/checkout/internal/inventory/internal/repository"
)

var (
	ErrInsufficientStock = errors.New("库存不足")
	ErrStockNotFound     = errors.New("库存记录不存在")
	ErrInvalidQuantity   = errors.New("数量必须大于0")
)

// Ledger 库存台账。
// 扣减和回补都不自己开事务，调用方把事务放在 ctx 里，
// 这样库存变更和订单状态变更会一起提交或者一起回滚。
//
//go:generate mockgen -source=./ledger.go -package=inventorymocks -destination=../../mocks/ledger.mock.go Ledger
type Ledger interface {
	// CheckAvailable 只是参考，不能作为扣减的依据
	CheckAvailable(ctx context.Context, key domain.StockKey, qty int64) (bool, error)
	// FindStocks 批量查询当前库存，查不到的按 0 处理
	FindStocks(ctx context.Context, keys []domain.StockKey) (map[domain.StockKey]int64, error)
	// Decrement 在扣减的那一刻重新校验库存，不够就返回 ErrInsufficientStock
	Decrement(ctx context.Context, key domain.StockKey, qty int64) error
	// Increment 只用于取消订单之类的补偿场景
	Increment(ctx context.Context, key domain.StockKey, qty int64) error
	SetStock(ctx context.Context, key domain.StockKey, stock int64) error
}

func NewLedger(repo repository.StockRepository) Ledger {
	return &ledger{repo: repo}
}

type ledger struct {
	repo repository.StockRepository
}

func (l *ledger) CheckAvailable(ctx context.Context, key domain.StockKey, qty int64) (bool, error) {
	stocks, err := l.FindStocks(ctx, []domain.StockKey{key})
	if err != nil {
		return false, err
	}
	return stocks[key] >= qty, nil
}

func (l *ledger) FindStocks(ctx context.Context, keys []domain.StockKey) (map[domain.StockKey]int64, error) {
	res := make(map[domain.StockKey]int64, len(keys))
	if len(keys) == 0 {
		return res, nil
	}
	stocks, err := l.repo.FindStocks(ctx, keys)
	if err != nil {
		return nil, err
	}
	for _, s := range stocks {
		res[s.Key] = s.Stock
	}
	return res, nil
}

func (l *ledger) Decrement(ctx context.Context, key domain.StockKey, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: qty = %d", ErrInvalidQuantity, qty)
	}
	ok, err := l.repo.Decrement(ctx, key, qty)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: productID = %d, variantID = %d, qty = %d",
			ErrInsufficientStock, key.ProductID, key.VariantID, qty)
	}
	return nil
}

func (l *ledger) Increment(ctx context.Context, key domain.StockKey, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: qty = %d", ErrInvalidQuantity, qty)
	}
	ok, err := l.repo.Increment(ctx, key, qty)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: productID = %d, variantID = %d", ErrStockNotFound, key.ProductID, key.VariantID)
	}
	return nil
}

func (l *ledger) SetStock(ctx context.Context, key domain.StockKey, stock int64) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock = %d", ErrInvalidQuantity, stock)
	}
	return l.repo.Save(ctx, domain.Stock{Key: key, Stock: stock})
}
