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

package errs

var (
	SystemError          = ErrorCode{Code: 520001, Msg: "系统错误"}
	InvalidAddress       = ErrorCode{Code: 520002, Msg: "收货地址非法"}
	EmptyCartSelection   = ErrorCode{Code: 520003, Msg: "请选择要购买的商品"}
	ItemsUnavailable     = ErrorCode{Code: 520004, Msg: "部分商品无法购买"}
	InvalidCoupon        = ErrorCode{Code: 520005, Msg: "优惠券不可用"}
	InvalidPaymentMethod = ErrorCode{Code: 520006, Msg: "支付方式非法"}
	InvalidTransition    = ErrorCode{Code: 520007, Msg: "订单当前状态不允许该操作"}
	OrderNotFound        = ErrorCode{Code: 520008, Msg: "订单不存在"}
	DuplicateRequest     = ErrorCode{Code: 520009, Msg: "请勿重复提交"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
