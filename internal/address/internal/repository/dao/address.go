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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type AddressDAO interface {
	FindByIDAndUID(ctx context.Context, id, uid int64) (Address, error)
	Save(ctx context.Context, addr Address) (int64, error)
}

type AddressGORMDAO struct {
	db *egorm.Component
}

func NewAddressGORMDAO(db *egorm.Component) AddressDAO {
	return &AddressGORMDAO{db: db}
}

func (d *AddressGORMDAO) FindByIDAndUID(ctx context.Context, id, uid int64) (Address, error) {
	var res Address
	err := database.Conn(ctx, d.db).Where("id = ? AND uid = ?", id, uid).First(&res).Error
	return res, err
}

func (d *AddressGORMDAO) Save(ctx context.Context, addr Address) (int64, error) {
	now := time.Now().UnixMilli()
	addr.Ctime, addr.Utime = now, now
	err := database.Conn(ctx, d.db).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"receiver", "phone", "email",
			"province_id", "province_name", "district_id", "district_name",
			"ward_code", "ward_name", "detail", "utime",
		}),
	}).Create(&addr).Error
	return addr.Id, err
}

type Address struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	UID          int64  `gorm:"column:uid;not null;index:idx_uid;comment:用户ID"`
	Receiver     string `gorm:"type:varchar(128);not null"`
	Phone        string `gorm:"type:varchar(32);not null"`
	Email        string `gorm:"type:varchar(256)"`
	ProvinceID   int64
	ProvinceName string `gorm:"type:varchar(128)"`
	DistrictID   int64
	DistrictName string `gorm:"type:varchar(128)"`
	WardCode     string `gorm:"type:varchar(32)"`
	WardName     string `gorm:"type:varchar(128)"`
	Detail       string `gorm:"type:varchar(512)"`
	Ctime        int64
	Utime        int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Address{})
}
