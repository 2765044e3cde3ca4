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

package ioc

import (
	"github.com/ecodeclub/checkout/internal/notification"
	"github.com/ecodeclub/checkout/internal/order"
	"github.com/ecodeclub/checkout/internal/pkg/snowflake"
	"github.com/ecodeclub/checkout/internal/shipping"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
)

func InitShippingConfig() shipping.Config {
	var cfg shipping.Config
	err := econf.UnmarshalKey("shipping", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitOrderConfig() order.Config {
	var cfg order.Config
	err := econf.UnmarshalKey("order", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitNotificationConfig() notification.Config {
	var cfg notification.Config
	err := econf.UnmarshalKey("notification", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitSnowflake() *snowflake.Generator {
	g, err := snowflake.NewGenerator(econf.GetInt64("snowflake.node"))
	if err != nil {
		panic(err)
	}
	return g
}

// InitRegistry 和 egovernor 暴露的 /metrics 使用同一个 registry
func InitRegistry() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
