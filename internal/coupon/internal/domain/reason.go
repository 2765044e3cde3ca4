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

package domain

import "fmt"

// Reason 优惠券不可用的原因，按照校验顺序排列
type Reason string

const (
	ReasonNotFound          Reason = "NOT_FOUND"
	ReasonInactive          Reason = "INACTIVE"
	ReasonNotStarted        Reason = "NOT_STARTED"
	ReasonExpired           Reason = "EXPIRED"
	ReasonUsageLimitReached Reason = "USAGE_LIMIT_REACHED"
	ReasonNotGranted        Reason = "NOT_GRANTED"
	ReasonUserLimitReached  Reason = "USER_LIMIT_REACHED"
	ReasonBelowMinimum      Reason = "BELOW_MINIMUM_AMOUNT"
)

var reasonMessages = map[Reason]string{
	ReasonNotFound:          "优惠券不存在",
	ReasonInactive:          "优惠券已停用",
	ReasonNotStarted:        "优惠券还未到使用时间",
	ReasonExpired:           "优惠券已过期",
	ReasonUsageLimitReached: "优惠券已被领完",
	ReasonNotGranted:        "没有可用的优惠券",
	ReasonUserLimitReached:  "已达到个人使用次数上限",
	ReasonBelowMinimum:      "未达到优惠券使用门槛",
}

func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return "优惠券不可用"
}

type ValidationError struct {
	Code   string
	Reason Reason
}

func NewValidationError(code string, reason Reason) *ValidationError {
	return &ValidationError{Code: code, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("优惠券 %s 不可用: %s", e.Code, e.Reason.Message())
}
