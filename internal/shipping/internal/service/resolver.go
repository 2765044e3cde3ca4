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

	"github.com/ecodeclub/checkout/internal/shipping/internal/client"
	"github.com/ecodeclub/checkout/internal/shipping/internal/domain"
	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
)

type Config struct {
	// DefaultFee 物流商不可用时兜底的运费
	DefaultFee      int64         `yaml:"defaultFee"`
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	MaxRetries      int32         `yaml:"maxRetries"`
}

//go:generate mockgen -source=./resolver.go -package=shippingmocks -destination=../../mocks/resolver.mock.go Resolver
type Resolver interface {
	// ResolveFee 永远不会因为物流商失败而返回错误，失败时用 DefaultFee 兜底
	ResolveFee(ctx context.Context, clientFee int64, dest domain.Destination, items []domain.Item) int64
}

type resolver struct {
	provider client.RateProvider
	cfg      Config
	logger   *elog.Component
}

func NewResolver(provider client.RateProvider, cfg Config) Resolver {
	return &resolver{
		provider: provider,
		cfg:      cfg,
		logger:   elog.DefaultLogger,
	}
}

func (r *resolver) ResolveFee(ctx context.Context, clientFee int64, dest domain.Destination, items []domain.Item) int64 {
	if clientFee > 0 {
		return clientFee
	}
	pkg := domain.NewPackage(items)
	fee, err := r.quote(ctx, dest, pkg)
	if err != nil {
		r.logger.Warn("获取运费失败，使用默认运费",
			elog.FieldErr(err),
			elog.Int64("districtID", dest.DistrictID),
			elog.String("wardCode", dest.WardCode),
			elog.Int64("defaultFee", r.cfg.DefaultFee))
		return r.cfg.DefaultFee
	}
	return fee
}

func (r *resolver) quote(ctx context.Context, dest domain.Destination, pkg domain.Package) (int64, error) {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(r.cfg.InitialInterval, r.cfg.MaxInterval, r.cfg.MaxRetries)
	if err != nil {
		return 0, err
	}
	for {
		fee, err := r.provider.Quote(ctx, dest, pkg)
		if err == nil {
			return fee, nil
		}
		next, ok := strategy.Next()
		if !ok {
			return 0, err
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(next):
		}
	}
}
