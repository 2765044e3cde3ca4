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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/checkout/internal/order/internal/domain"
	"github.com/ecodeclub/checkout/internal/order/internal/service"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const (
	requestIDExpiration = 10 * time.Minute
	maxListLimit        = 50
)

var (
	_ ginx.Handler = &Handler{}

	errDuplicateRequest = errors.New("重复请求")
)

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/detail", ginx.BS[OrderSNReq](h.RetrieveOrderDetail))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/cancel", ginx.BS[OrderSNReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 把选中的购物车商品转成订单
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.checkRequestID(ctx.Request.Context(), req.RequestID)
	if errors.Is(err, errDuplicateRequest) {
		return duplicateRequestResult, err
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, err := h.svc.CreateOrder(ctx.Request.Context(), service.CreateOrderReq{
		UID:               sess.Claims().Uid,
		AddressID:         req.AddressID,
		CartItemIDs:       req.CartItemIDs,
		PaymentMethod:     domain.PaymentMethod(req.PaymentMethod),
		CouponCode:        req.CouponCode,
		ClientShippingFee: req.ShippingFee,
	})
	if err != nil {
		return errorResult(err), fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN:     order.SN,
			TotalAmount: order.Totals.Total(),
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	ok, err := h.cache.SetNX(ctx, h.createOrderRequestKey(requestID), requestID, requestIDExpiration)
	if err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	if !ok {
		return errDuplicateRequest
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

// RetrieveOrderDetail 查看订单详情
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindUserOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err), fmt.Errorf("查找订单失败: %w", err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

// ListOrders 分页查询用户订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	orders, total, err := h.svc.ListUserOrders(ctx.Request.Context(), sess.Claims().Uid, req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

// CancelOrder 用户取消订单
func (h *Handler) CancelOrder(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	_, err := h.svc.CancelUserOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err), fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
