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

	"github.com/ecodeclub/checkout/internal/order/internal/errs"
	"github.com/ecodeclub/checkout/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
)

// errorResult 把下单和状态流转的业务错误翻译成前端能识别的错误码
func errorResult(err error) ginx.Result {
	var (
		itemsErr  *service.ItemsError
		couponErr *service.CouponError
	)
	switch {
	case errors.As(err, &itemsErr):
		return ginx.Result{
			Code: errs.ItemsUnavailable.Code,
			Msg:  errs.ItemsUnavailable.Msg,
			Data: toViolationVOs(itemsErr.Violations),
		}
	case errors.As(err, &couponErr):
		return ginx.Result{
			Code: errs.InvalidCoupon.Code,
			Msg:  errs.InvalidCoupon.Msg,
			Data: CouponViolation{Code: couponErr.Code, Reason: string(couponErr.Reason)},
		}
	case errors.Is(err, service.ErrInvalidAddress):
		return ginx.Result{Code: errs.InvalidAddress.Code, Msg: errs.InvalidAddress.Msg}
	case errors.Is(err, service.ErrEmptyCartSelection):
		return ginx.Result{Code: errs.EmptyCartSelection.Code, Msg: errs.EmptyCartSelection.Msg}
	case errors.Is(err, service.ErrInvalidPaymentMethod):
		return ginx.Result{Code: errs.InvalidPaymentMethod.Code, Msg: errs.InvalidPaymentMethod.Msg}
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult
	}
	return systemErrorResult
}
