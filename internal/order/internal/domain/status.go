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

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// 只允许向前流转，取消走单独的流程
var forward = map[Status]Status{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusProcessing,
	StatusProcessing: StatusDelivered,
}

func (s Status) CanTransitionTo(to Status) bool {
	next, ok := forward[s]
	return ok && next == to
}

func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// StatusHistory 状态流转记录，只追加。初始的 PENDING 记录 From 为空
type StatusHistory struct {
	ID      int64
	OrderID int64
	From    Status
	To      Status
	Ctime   time.Time
}

// Timeline 同一个状态出现多次的时候以最后一次为准
func Timeline(histories []StatusHistory) map[Status]time.Time {
	res := make(map[Status]time.Time, len(histories))
	for _, h := range histories {
		if prev, ok := res[h.To]; ok && prev.After(h.Ctime) {
			continue
		}
		res[h.To] = h.Ctime
	}
	return res
}
