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
	"errors"
	"time"

	"github.com/ecodeclub/checkout/internal/coupon/internal/domain"
	"github.com/ecodeclub/checkout/internal/coupon/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/save", ginx.BS[SaveCouponReq](h.Save))
	g.POST("/grant", ginx.BS[GrantCouponReq](h.Grant))
	g.POST("/detail", ginx.BS[CouponDetailReq](h.Detail))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveCouponReq, sess session.Session) (ginx.Result, error) {
	c := req.Coupon
	id, err := h.svc.CreateCoupon(ctx.Request.Context(), domain.Coupon{
		Code:              c.Code,
		Type:              domain.DiscountType(c.Type),
		Value:             c.Value,
		MinimumAmount:     c.MinimumAmount,
		StartDate:         time.UnixMilli(c.StartDate),
		EndDate:           time.UnixMilli(c.EndDate),
		IsActive:          c.IsActive,
		UsageLimit:        c.UsageLimit,
		UsageLimitPerUser: c.UsageLimitPerUser,
		ApplyToShipping:   c.ApplyToShipping,
	})
	if errors.Is(err, service.ErrInvalidCoupon) {
		return invalidCouponResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) Grant(ctx *ginx.Context, req GrantCouponReq, sess session.Session) (ginx.Result, error) {
	if req.UID <= 0 || req.CouponID <= 0 {
		return invalidCouponResult, errors.New("用户ID或优惠券ID非法")
	}
	id, err := h.svc.GrantCoupon(ctx.Request.Context(), req.UID, req.CouponID, time.UnixMilli(req.ExpiresAt))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req CouponDetailReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.FindCouponByCode(ctx.Request.Context(), req.Code)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Coupon{
		ID:                c.ID,
		Code:              c.Code,
		Type:              string(c.Type),
		Value:             c.Value,
		MinimumAmount:     c.MinimumAmount,
		StartDate:         c.StartDate.UnixMilli(),
		EndDate:           c.EndDate.UnixMilli(),
		IsActive:          c.IsActive,
		UsageLimit:        c.UsageLimit,
		UsedCount:         c.UsedCount,
		UsageLimitPerUser: c.UsageLimitPerUser,
		ApplyToShipping:   c.ApplyToShipping,
	}}, nil
}
