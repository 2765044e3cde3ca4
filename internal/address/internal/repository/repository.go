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
	"errors"

	"github.com/ecodeclub/checkout/internal/address/internal/domain"
	"github.com/ecodeclub/checkout/internal/address/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("地址不存在")

type AddressRepository interface {
	FindByIDAndUID(ctx context.Context, id, uid int64) (domain.Address, error)
	Save(ctx context.Context, addr domain.Address) (int64, error)
}

func NewAddressRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{dao: d}
}

type addressRepository struct {
	dao dao.AddressDAO
}

func (r *addressRepository) FindByIDAndUID(ctx context.Context, id, uid int64) (domain.Address, error) {
	addr, err := r.dao.FindByIDAndUID(ctx, id, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Address{}, ErrAddressNotFound
	}
	if err != nil {
		return domain.Address{}, err
	}
	return r.toDomain(addr), nil
}

func (r *addressRepository) Save(ctx context.Context, addr domain.Address) (int64, error) {
	return r.dao.Save(ctx, dao.Address{
		Id:           addr.ID,
		UID:          addr.UID,
		Receiver:     addr.Receiver,
		Phone:        addr.Phone,
		Email:        addr.Email,
		ProvinceID:   addr.ProvinceID,
		ProvinceName: addr.ProvinceName,
		DistrictID:   addr.DistrictID,
		DistrictName: addr.DistrictName,
		WardCode:     addr.WardCode,
		WardName:     addr.WardName,
		Detail:       addr.Detail,
	})
}

func (r *addressRepository) toDomain(a dao.Address) domain.Address {
	return domain.Address{
		ID:           a.Id,
		UID:          a.UID,
		Receiver:     a.Receiver,
		Phone:        a.Phone,
		Email:        a.Email,
		ProvinceID:   a.ProvinceID,
		ProvinceName: a.ProvinceName,
		DistrictID:   a.DistrictID,
		DistrictName: a.DistrictName,
		WardCode:     a.WardCode,
		WardName:     a.WardName,
		Detail:       a.Detail,
	}
}
