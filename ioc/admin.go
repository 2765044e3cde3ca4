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
	"net/http"

	"github.com/ecodeclub/checkout/internal/coupon"
	"github.com/ecodeclub/checkout/internal/order"
	"github.com/ecodeclub/checkout/internal/pkg/middleware"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

// InitAdminServer 运营后台，订单流转和优惠券管理都在这里
func InitAdminServer(metrics *middleware.MetricsBuilder,
	orderHdl *order.AdminHandler,
	couponHdl *coupon.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(newCORS("admin"))
	res.Use(metrics.Build("admin"))
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	orderHdl.PrivateRoutes(res.Engine)
	couponHdl.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 要求 jwt 里面带 admin=true
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess, err := session.Get(&ginx.Context{Context: ctx})
		if err != nil {
			elog.Error("获取 admin session 失败", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if sess.Claims().Get("admin").StringOrDefault("") != "true" {
			elog.Warn("非管理员访问 admin 接口", elog.Int64("uid", sess.Claims().Uid))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
