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

package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/ecodeclub/checkout/internal/email"
	"github.com/ecodeclub/checkout/internal/order/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var subjects = map[domain.Status]string{
	domain.StatusPending:    "订单已提交",
	domain.StatusConfirmed:  "订单已确认",
	domain.StatusProcessing: "订单正在配送",
	domain.StatusDelivered:  "订单已签收",
	domain.StatusCancelled:  "订单已取消",
}

//go:generate mockgen -source=./mailer.go -package=mailermocks -destination=./mocks/mailer.mock.go Mailer
type Mailer interface {
	// Send 按订单当前状态选择模板，收件人是下单时地址快照里的邮箱
	Send(ctx context.Context, order domain.Order) error
}

type Config struct {
	FromName string `yaml:"fromName"`
}

type TemplateMailer struct {
	svc  email.Service
	tpl  *template.Template
	from string
}

func NewTemplateMailer(svc email.Service, cfg Config) (*TemplateMailer, error) {
	tpl, err := template.New("order").Funcs(template.FuncMap{
		"money": money,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("解析邮件模板失败: %w", err)
	}
	return &TemplateMailer{svc: svc, tpl: tpl, from: cfg.FromName}, nil
}

func (m *TemplateMailer) Send(ctx context.Context, order domain.Order) error {
	subject, ok := subjects[order.Status]
	if !ok {
		return fmt.Errorf("未知的订单状态 %s", order.Status)
	}
	var body bytes.Buffer
	err := m.tpl.ExecuteTemplate(&body, "order.html", view{
		Subject: subject,
		Order:   order,
		Totals: totalsView{
			Subtotal:    order.Totals.Subtotal(),
			ShippingFee: order.Totals.ShippingFee(),
			Discount:    order.Totals.Discount(),
			Total:       order.Totals.Total(),
		},
	})
	if err != nil {
		return fmt.Errorf("渲染邮件失败: %w", err)
	}
	return m.svc.SendMail(ctx, email.Mail{
		From:    m.from,
		To:      order.Address.Email,
		Subject: fmt.Sprintf("%s %s", subject, order.SN),
		Body:    body.Bytes(),
	})
}

type view struct {
	Subject string
	Order   domain.Order
	Totals  totalsView
}

type totalsView struct {
	Subtotal    int64
	ShippingFee int64
	Discount    int64
	Total       int64
}

// money 千分位，例如 230000 -> 230,000
func money(v int64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	s := fmt.Sprintf("%d", v)
	var buf bytes.Buffer
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf.WriteByte(',')
		}
		buf.WriteRune(c)
	}
	return sign + buf.String()
}
