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

	"github.com/ecodeclub/checkout/internal/cart/internal/domain"
	"github.com/ecodeclub/checkout/internal/cart/internal/repository"
	"github.com/ecodeclub/checkout/internal/pkg/database"
)

var (
	ErrItemsNotFound   = errors.New("购物车商品不存在")
	ErrInvalidQuantity = errors.New("商品数量非法")
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	// FindSelectedItems 所有 ID 都必须是该用户购物车里的，否则返回 ErrItemsNotFound
	FindSelectedItems(ctx context.Context, uid int64, ids []int64) ([]domain.Item, error)
	AddItem(ctx context.Context, item domain.Item) (int64, error)
	// RemoveItems 必须在 ctx 的事务中调用。
	// 实际删除的行数和 ids 去重后的数量不一致时返回 ErrItemsNotFound，
	// 说明这些购物车行已经被别的订单用掉了
	RemoveItems(ctx context.Context, uid int64, ids []int64) error
}

func NewService(repo repository.CartRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CartRepository
}

func (s *service) FindSelectedItems(ctx context.Context, uid int64, ids []int64) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: 没有选中任何商品", ErrItemsNotFound)
	}
	items, err := s.repo.FindItems(ctx, uid, ids)
	if err != nil {
		return nil, err
	}
	if want := countUnique(ids); len(items) != want {
		return nil, fmt.Errorf("%w: uid = %d, 期望 %d 个, 实际 %d 个", ErrItemsNotFound, uid, want, len(items))
	}
	return items, nil
}

func (s *service) AddItem(ctx context.Context, item domain.Item) (int64, error) {
	if item.Quantity <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, item.Quantity)
	}
	return s.repo.AddItem(ctx, item)
}

func (s *service) RemoveItems(ctx context.Context, uid int64, ids []int64) error {
	if !database.InTransaction(ctx) {
		return fmt.Errorf("删除购物车商品: %w", database.ErrNotInTransaction)
	}
	cnt, err := s.repo.RemoveItems(ctx, uid, ids)
	if err != nil {
		return err
	}
	if want := countUnique(ids); cnt != int64(want) {
		return fmt.Errorf("%w: uid = %d, 期望删除 %d 个, 实际删除 %d 个", ErrItemsNotFound, uid, want, cnt)
	}
	return nil
}

func countUnique(ids []int64) int {
	unique := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	return len(unique)
}
