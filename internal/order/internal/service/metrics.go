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

package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	checkouts   *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_orders_total",
			Help: "Total number of checkout attempts by result",
		}, []string{"result"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Total number of order status transitions",
		}, []string{"from", "to", "result"}),
	}
	m.checkouts = register(reg, m.checkouts)
	m.transitions = register(reg, m.transitions)
	return m
}

// register 同一个 Registerer 重复注册时复用已有的指标
func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	err := reg.Register(c)
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing
		}
	}
	return c
}

func (m *metrics) checkout(err error) {
	m.checkouts.WithLabelValues(resultOf(err)).Inc()
}

func (m *metrics) transition(from, to string, err error) {
	m.transitions.WithLabelValues(from, to, resultOf(err)).Inc()
}

func resultOf(err error) string {
	var (
		itemsErr  *ItemsError
		couponErr *CouponError
	)
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, ErrEmptyCartSelection):
		return "empty_cart_selection"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.As(err, &itemsErr):
		return "items_rejected"
	case errors.As(err, &couponErr):
		return "invalid_coupon"
	case errors.Is(err, ErrPersistence):
		return "persistence_failure"
	default:
		return "error"
	}
}
