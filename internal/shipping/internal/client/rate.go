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

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/checkout/internal/shipping/internal/domain"
	"github.com/go-resty/resty/v2"
)

var ErrUnexpectedResponse = errors.New("物流运费接口返回异常")

// RateProvider 物流商的运费报价
//
//go:generate mockgen -source=./rate.go -package=shippingmocks -destination=../../mocks/rate.mock.go RateProvider
type RateProvider interface {
	Quote(ctx context.Context, dest domain.Destination, pkg domain.Package) (int64, error)
}

type Config struct {
	BaseURL   string        `yaml:"baseURL"`
	Token     string        `yaml:"token"`
	ShopID    int64         `yaml:"shopID"`
	ServiceID int64         `yaml:"serviceID"`
	Timeout   time.Duration `yaml:"timeout"`
}

// HTTPRateProvider 调用物流商的 /shipping-order/fee 接口
type HTTPRateProvider struct {
	client *resty.Client
	cfg    Config
}

func NewHTTPRateProvider(cfg Config) *HTTPRateProvider {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Token", cfg.Token).
		SetHeader("ShopId", fmt.Sprintf("%d", cfg.ShopID)).
		SetTimeout(cfg.Timeout)
	return &HTTPRateProvider{client: c, cfg: cfg}
}

type feeRequest struct {
	ServiceID  int64  `json:"service_id,omitempty"`
	ToDistrict int64  `json:"to_district_id"`
	ToWardCode string `json:"to_ward_code"`
	Weight     int64  `json:"weight"`
	Length     int64  `json:"length"`
	Width      int64  `json:"width"`
	Height     int64  `json:"height"`
}

type feeResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Total int64 `json:"total"`
	} `json:"data"`
}

func (p *HTTPRateProvider) Quote(ctx context.Context, dest domain.Destination, pkg domain.Package) (int64, error) {
	var res feeResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(feeRequest{
			ServiceID:  p.cfg.ServiceID,
			ToDistrict: dest.DistrictID,
			ToWardCode: dest.WardCode,
			Weight:     pkg.Weight,
			Length:     pkg.Length,
			Width:      pkg.Width,
			Height:     pkg.Height,
		}).
		SetResult(&res).
		Post("/shipping-order/fee")
	if err != nil {
		return 0, err
	}
	if resp.StatusCode() != http.StatusOK || res.Code != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d, code %d, %s", ErrUnexpectedResponse, resp.StatusCode(), res.Code, res.Message)
	}
	if res.Data.Total <= 0 {
		return 0, fmt.Errorf("%w: total %d", ErrUnexpectedResponse, res.Data.Total)
	}
	return res.Data.Total, nil
}
