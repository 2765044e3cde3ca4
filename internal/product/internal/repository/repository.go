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

	"github.com/ecodeclub/checkout/internal/product/internal/domain"
	"github.com/ecodeclub/checkout/internal/product/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

type ProductRepository interface {
	FindProducts(ctx context.Context, ids []int64) ([]domain.Product, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d}
}

type productRepository struct {
	dao dao.ProductDAO
}

func (r *productRepository) FindProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var (
		eg       errgroup.Group
		products []dao.Product
		variants []dao.ProductVariant
	)
	eg.Go(func() error {
		var err error
		products, err = r.dao.FindProductsByIDs(ctx, ids)
		return err
	})
	eg.Go(func() error {
		var err error
		variants, err = r.dao.FindVariantsByProductIDs(ctx, ids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	grouped := make(map[int64][]dao.ProductVariant, len(products))
	for _, v := range variants {
		grouped[v.ProductID] = append(grouped[v.ProductID], v)
	}
	return slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src, grouped[src.Id])
	}), nil
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(p), slice.Map(p.Variants, func(idx int, src domain.Variant) dao.ProductVariant {
		return r.toVariantEntity(src)
	}))
}

func (r *productRepository) toDomain(p dao.Product, variants []dao.ProductVariant) domain.Product {
	return domain.Product{
		ID:   p.Id,
		SN:   p.SN,
		Name: p.Name,
		Desc: p.Description,
		Price: domain.Price{
			List: p.Price,
			Sale: p.SalePrice,
		},
		Dimension: domain.Dimension{
			Weight: p.Weight,
			Length: p.Length,
			Width:  p.Width,
			Height: p.Height,
		},
		Status: domain.Status(p.Status),
		Variants: slice.Map(variants, func(idx int, src dao.ProductVariant) domain.Variant {
			return domain.Variant{
				ID:        src.Id,
				ProductID: src.ProductID,
				SKU:       src.SKU,
				Name:      src.Name,
				Price: domain.Price{
					List: src.Price,
					Sale: src.SalePrice,
				},
				Dimension: domain.Dimension{
					Weight: src.Weight,
					Length: src.Length,
					Width:  src.Width,
					Height: src.Height,
				},
				Status: domain.Status(src.Status),
			}
		}),
	}
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:          p.ID,
		SN:          p.SN,
		Name:        p.Name,
		Description: p.Desc,
		Price:       p.Price.List,
		SalePrice:   p.Price.Sale,
		Weight:      p.Dimension.Weight,
		Length:      p.Dimension.Length,
		Width:       p.Dimension.Width,
		Height:      p.Dimension.Height,
		Status:      p.Status.ToUint8(),
	}
}

func (r *productRepository) toVariantEntity(v domain.Variant) dao.ProductVariant {
	return dao.ProductVariant{
		Id:        v.ID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Name:      v.Name,
		Price:     v.Price.List,
		SalePrice: v.Price.Sale,
		Weight:    v.Dimension.Weight,
		Length:    v.Dimension.Length,
		Width:     v.Dimension.Width,
		Height:    v.Dimension.Height,
		Status:    v.Status.ToUint8(),
	}
}
