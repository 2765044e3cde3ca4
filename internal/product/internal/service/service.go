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

	"github.com/ecodeclub/checkout/internal/product/internal/domain"
	"github.com/ecodeclub/checkout/internal/product/internal/repository"
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	// FindProducts 返回以商品 ID 为键的商品，带上所有规格，不存在的 ID 不会出现在结果里
	FindProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	SaveProduct(ctx context.Context, p domain.Product) (int64, error)
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	res := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	products, err := s.repo.FindProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		res[p.ID] = p
	}
	return res, nil
}

func (s *service) SaveProduct(ctx context.Context, p domain.Product) (int64, error) {
	return s.repo.Save(ctx, p)
}
