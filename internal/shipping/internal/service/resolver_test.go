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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/checkout/internal/shipping/internal/domain"
	shippingmocks "github.com/ecodeclub/checkout/internal/shipping/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResolver_ResolveFee(t *testing.T) {
	dest := domain.Destination{DistrictID: 1442, WardCode: "20109"}
	items := []domain.Item{{Weight: 200, Length: 10, Width: 30, Height: 5, Quantity: 3}}
	pkg := domain.Package{Weight: 600, Length: 30, Width: 10, Height: 5}
	cfg := Config{
		DefaultFee:      30000,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxRetries:      2,
	}
	testCases := []struct {
		name      string
		clientFee int64
		mock      func(ctrl *gomock.Controller) *shippingmocks.MockRateProvider
		want      int64
	}{
		{
			name:      "使用客户端传入的运费",
			clientFee: 15000,
			mock: func(ctrl *gomock.Controller) *shippingmocks.MockRateProvider {
				return shippingmocks.NewMockRateProvider(ctrl)
			},
			want: 15000,
		},
		{
			name: "物流商报价",
			mock: func(ctrl *gomock.Controller) *shippingmocks.MockRateProvider {
				p := shippingmocks.NewMockRateProvider(ctrl)
				p.EXPECT().Quote(gomock.Any(), dest, pkg).Return(int64(36300), nil)
				return p
			},
			want: 36300,
		},
		{
			name: "重试后成功",
			mock: func(ctrl *gomock.Controller) *shippingmocks.MockRateProvider {
				p := shippingmocks.NewMockRateProvider(ctrl)
				first := p.EXPECT().Quote(gomock.Any(), dest, pkg).Return(int64(0), errors.New("timeout"))
				p.EXPECT().Quote(gomock.Any(), dest, pkg).Return(int64(36300), nil).After(first)
				return p
			},
			want: 36300,
		},
		{
			name: "重试耗尽使用默认运费",
			mock: func(ctrl *gomock.Controller) *shippingmocks.MockRateProvider {
				p := shippingmocks.NewMockRateProvider(ctrl)
				p.EXPECT().Quote(gomock.Any(), dest, pkg).Return(int64(0), errors.New("timeout")).Times(3)
				return p
			},
			want: 30000,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			r := NewResolver(tc.mock(ctrl), cfg)
			assert.Equal(t, tc.want, r.ResolveFee(context.Background(), tc.clientFee, dest, items))
		})
	}
}
