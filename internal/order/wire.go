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

//go:build wireinject

package order

import (
	"sync"

	"github.com/ecodeclub/checkout/internal/address"
	"github.com/ecodeclub/checkout/internal/cart"
	"github.com/ecodeclub/checkout/internal/coupon"
	"github.com/ecodeclub/checkout/internal/email"
	"github.com/ecodeclub/checkout/internal/inventory"
	"github.com/ecodeclub/checkout/internal/order/internal/event"
	"github.com/ecodeclub/checkout/internal/order/internal/job"
	"github.com/ecodeclub/checkout/internal/order/internal/mailer"
	"github.com/ecodeclub/checkout/internal/order/internal/repository"
	"github.com/ecodeclub/checkout/internal/order/internal/repository/dao"
	"github.com/ecodeclub/checkout/internal/order/internal/service"
	"github.com/ecodeclub/checkout/internal/order/internal/web"
	"github.com/ecodeclub/checkout/internal/payment"
	"github.com/ecodeclub/checkout/internal/pkg/database"
	"github.com/ecodeclub/checkout/internal/pkg/sequencenumber"
	"github.com/ecodeclub/checkout/internal/product"
	"github.com/ecodeclub/checkout/internal/shipping"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	repository.NewOrderRepository,
	database.NewGormTransactor,
	wire.Bind(new(database.Transactor), new(*database.GormTransactor)),
	sequencenumber.NewGenerator,
	event.NewMQNotifier,
	wire.Bind(new(event.Notifier), new(*event.MQNotifier)),
	initMailer,
	wire.Bind(new(mailer.Mailer), new(*mailer.TemplateMailer)),
	service.NewService,
)

func InitModule(db *egorm.Component,
	cache ecache.Cache,
	q mq.MQ,
	reg prometheus.Registerer,
	emailSvc email.Service,
	cfg Config,
	addressModule *address.Module,
	cartModule *cart.Module,
	productModule *product.Module,
	inventoryModule *inventory.Module,
	couponModule *coupon.Module,
	shippingModule *shipping.Module,
	paymentModule *payment.Module,
) (*Module, error) {
	wire.Build(
		ServiceSet,
		web.NewHandler,
		web.NewAdminHandler,
		initCancelStaleOrdersJob,
		initPaymentConsumer,
		wire.FieldsOf(new(*address.Module), "Svc"),
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*inventory.Module), "Ledger"),
		wire.FieldsOf(new(*coupon.Module), "Svc"),
		wire.FieldsOf(new(*shipping.Module), "Resolver"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initMailer(svc email.Service, cfg Config) (*mailer.TemplateMailer, error) {
	return mailer.NewTemplateMailer(svc, cfg.Mail)
}

func initCancelStaleOrdersJob(svc service.Service, cfg Config) *job.CancelStaleOrdersJob {
	return job.NewCancelStaleOrdersJob(svc, cfg.BatchSize, cfg.PendingTimeout)
}

func initPaymentConsumer(svc service.Service, q mq.MQ) (*event.PaymentConsumer, error) {
	return event.NewPaymentConsumer(svc, q)
}
