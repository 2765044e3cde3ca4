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

	"github.com/ecodeclub/checkout/internal/inventory/internal/domain"
	"github.com/ecodeclub/checkout/internal/inventory/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type StockRepository interface {
	FindStocks(ctx context.Context, keys []domain.StockKey) ([]domain.Stock, error)
	Decrement(ctx context.Context, key domain.StockKey, qty int64) (bool, error)
	Increment(ctx context.Context, key domain.StockKey, qty int64) (bool, error)
	Save(ctx context.Context, s domain.Stock) error
}

func NewStockRepository(d dao.StockDAO) StockRepository {
	return &stockRepository{dao: d}
}

type stockRepository struct {
	dao dao.StockDAO
}

func (r *stockRepository) FindStocks(ctx context.Context, keys []domain.StockKey) ([]domain.Stock, error) {
	stocks, err := r.dao.FindStocks(ctx, slice.Map(keys, func(idx int, src domain.StockKey) [2]int64 {
		return [2]int64{src.ProductID, src.VariantID}
	}))
	if err != nil {
		return nil, err
	}
	return slice.Map(stocks, func(idx int, src dao.Stock) domain.Stock {
		return domain.Stock{
			Key:   domain.StockKey{ProductID: src.ProductID, VariantID: src.VariantID},
			Stock: src.Stock,
		}
	}), nil
}

func (r *stockRepository) Decrement(ctx context.Context, key domain.StockKey, qty int64) (bool, error) {
	return r.dao.Decrement(ctx, key.ProductID, key.VariantID, qty)
}

func (r *stockRepository) Increment(ctx context.Context, key domain.StockKey, qty int64) (bool, error) {
	return r.dao.Increment(ctx, key.ProductID, key.VariantID, qty)
}

func (r *stockRepository) Save(ctx context.Context, s domain.Stock) error {
	return r.dao.Upsert(ctx, dao.Stock{
		ProductID: s.Key.ProductID,
		VariantID: s.Key.VariantID,
		Stock:     s.Stock,
	})
}
