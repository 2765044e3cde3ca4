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

package web

import (
	"fmt"

	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/transition", ginx.BS[TransitionOrderReq](h.Transition))
	g.POST("/cancel", ginx.BS[OrderIDReq](h.Cancel))
	g.POST("/detail", ginx.BS[OrderIDReq](h.Detail))
}

func (h *AdminHandler) Transition(ctx *ginx.Context, req TransitionOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.TransitionOrder(ctx.Request.Context(), req.ID, domain.Status(req.Status))
	if err != nil {
		return errorResult(err), fmt.Errorf("订单状态流转失败 id = %d: %w", req.ID, err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.CancelOrder(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err), fmt.Errorf("取消订单失败 id = %d: %w", req.ID, err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}
