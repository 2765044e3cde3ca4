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

import "time"

type Method string

const (
	MethodCOD    Method = "COD"
	MethodOnline Method = "ONLINE"
)

func (m Method) Valid() bool {
	return m == MethodCOD || m == MethodOnline
}

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
	StatusFailed  Status = "FAILED"
)

// Payment 每个订单有且只有一条
type Payment struct {
	ID      int64
	SN      string
	OrderID int64
	OrderSN string
	UID     int64
	Method  Method
	// ExternalRef 在线支付时支付网关的交易号，创建时先占位
	ExternalRef string
	Amount      int64
	Status      Status
	PaidAt      time.Time
	Ctime       time.Time
	Utime       time.Time
}
