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

	"github.com/ecodeclub/checkout/internal/cart/internal/domain"
	"github.com/ecodeclub/checkout/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type CartRepository interface {
	FindItems(ctx context.Context, uid int64, ids []int64) ([]domain.Item, error)
	AddItem(ctx context.Context, item domain.Item) (int64, error)
	RemoveItems(ctx context.Context, uid int64, ids []int64) (int64, error)
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

type cartRepository struct {
	dao dao.CartDAO
}

func (r *cartRepository) FindItems(ctx context.Context, uid int64, ids []int64) ([]domain.Item, error) {
	items, err := r.dao.FindByIDs(ctx, uid, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.CartItem) domain.Item {
		return domain.Item{
			ID:        src.Id,
			UID:       src.UID,
			ProductID: src.ProductID,
			VariantID: src.VariantID,
			Quantity:  src.Quantity,
			Ctime:     src.Ctime,
			Utime:     src.Utime,
		}
	}), nil
}

func (r *cartRepository) AddItem(ctx context.Context, item domain.Item) (int64, error) {
	return r.dao.Upsert(ctx, dao.CartItem{
		UID:       item.UID,
		ProductID: item.ProductID,
		VariantID: item.VariantID,
		Quantity:  item.Quantity,
	})
}

func (r *cartRepository) RemoveItems(ctx context.Context, uid int64, ids []int64) (int64, error) {
	return r.dao.DeleteByIDs(ctx, uid, ids)
}
