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

	"github.com/ecodeclub/checkout/internal/address/internal/domain"
	"github.com/ecodeclub/checkout/internal/address/internal/repository"
)

//go:generate mockgen -source=./service.go -package=addressmocks -destination=../../mocks/address.mock.go Service
type Service interface {
	// FindUserAddress 地址不属于该用户时返回 ErrAddressNotFound
	FindUserAddress(ctx context.Context, uid, id int64) (domain.Address, error)
	Save(ctx context.Context, addr domain.Address) (int64, error)
}

func NewService(repo repository.AddressRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.AddressRepository
}

func (s *service) FindUserAddress(ctx context.Context, uid, id int64) (domain.Address, error) {
	return s.repo.FindByIDAndUID(ctx, id, uid)
}

func (s *service) Save(ctx context.Context, addr domain.Address) (int64, error) {
	return s.repo.Save(ctx, addr)
}
