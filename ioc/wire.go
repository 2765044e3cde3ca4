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

package ioc

import (
	"github.com/ecodeclub/checkout/internal/address"
	"github.com/ecodeclub/checkout/internal/cart"
	"github.com/ecodeclub/checkout/internal/coupon"
	"github.com/ecodeclub/checkout/internal/inventory"
	"github.com/ecodeclub/checkout/internal/notification"
	"github.com/ecodeclub/checkout/internal/order"
	"github.com/ecodeclub/checkout/internal/payment"
	"github.com/ecodeclub/checkout/internal/pkg/middleware"
	"github.com/ecodeclub/checkout/internal/product"
	"github.com/ecodeclub/checkout/internal/shipping"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitRegistry, InitSnowflake, InitEmailService)

var ConfigSet = wire.NewSet(InitShippingConfig, InitOrderConfig, InitNotificationConfig)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ConfigSet,
		address.InitModule,
		cart.InitModule,
		product.InitModule,
		inventory.InitModule,
		coupon.InitModule,
		shipping.InitModule,
		payment.InitModule,
		order.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "CancelStaleOrdersJob"),
		wire.FieldsOf(new(*coupon.Module), "AdminHdl"),
		middleware.NewMetricsBuilder,
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
