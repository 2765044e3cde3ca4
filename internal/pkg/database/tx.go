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

package database

import (
	"context"
	"errors"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type txKey struct{}

// ErrNotInTransaction 只能在事务中执行的操作拿到了不带事务的 ctx
var ErrNotInTransaction = errors.New("没有在事务中执行")

// Transactor 跨模块的事务边界。
// fn 拿到的 ctx 携带了事务，各个模块的 DAO 通过 Conn 取出来用，
// 这样订单、库存、优惠券、购物车的写操作会落在同一个事务里。
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type GormTransactor struct {
	db *egorm.Component
}

func NewGormTransactor(db *egorm.Component) *GormTransactor {
	return &GormTransactor{db: db}
}

// Transaction 如果 ctx 里面已经有事务了，直接复用，不会开启嵌套事务
func (t *GormTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Conn 返回 ctx 中的事务，没有的话就返回 db 本身
func Conn(ctx context.Context, db *egorm.Component) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// InTransaction 用于要求必须在事务里面执行的操作做检查
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}
