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

type Coupon struct {
	ID                int64  `json:"id,omitempty"`
	Code              string `json:"code"`
	Type              string `json:"type"`
	Value             int64  `json:"value"`
	MinimumAmount     int64  `json:"minimumAmount"`
	StartDate         int64  `json:"startDate"`
	EndDate           int64  `json:"endDate"`
	IsActive          bool   `json:"isActive"`
	UsageLimit        int64  `json:"usageLimit"`
	UsedCount         int64  `json:"usedCount"`
	UsageLimitPerUser int64  `json:"usageLimitPerUser"`
	ApplyToShipping   bool   `json:"applyToShipping"`
}

type SaveCouponReq struct {
	Coupon Coupon `json:"coupon"`
}

type GrantCouponReq struct {
	UID       int64 `json:"uid"`
	CouponID  int64 `json:"couponId"`
	ExpiresAt int64 `json:"expiresAt"`
}

type CouponDetailReq struct {
	Code string `json:"code"`
}
