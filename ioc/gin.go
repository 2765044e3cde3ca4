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
	"strings"

	"github.com/ecodeclub/checkout/internal/order"
	"github.com/ecodeclub/checkout/internal/pkg/middleware"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	metrics *middleware.MetricsBuilder,
	orderHdl *order.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(newCORS("web"))
	res.Use(metrics.Build("web"))
	res.GET("/health", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	orderHdl.PublicRoutes(res.Engine)
	res.Use(session.CheckLoginMiddleware())
	orderHdl.PrivateRoutes(res.Engine)
	return res
}

// newCORS 允许的来源从 <server>.allowOrigins 读取，只配置前缀
func newCORS(server string) gin.HandlerFunc {
	origins := econf.GetStringSlice(server + ".allowOrigins")
	if len(origins) == 0 {
		origins = []string{"http://localhost"}
	}
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowOriginFunc: func(origin string) bool {
			for _, o := range origins {
				if strings.HasPrefix(origin, o) {
					return true
				}
			}
			return false
		},
	})
}
