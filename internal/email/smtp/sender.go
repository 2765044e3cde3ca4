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

package smtp

import (
	"context"
	"fmt"
	"io"

	"github.com/ecodeclub/checkout/internal/email"
	"gopkg.in/gomail.v2"
)

type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// Address 发信地址
	Address string `yaml:"address"`
	SSL     bool   `yaml:"ssl"`
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Sender 通过 SMTP 发送邮件
type Sender struct {
	dialer  dialer
	address string
}

func NewSender(cfg Config) *Sender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	return &Sender{dialer: d, address: cfg.Address}
}

func (s *Sender) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := s.message(mail)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("邮件发送失败: to = %s, %w", mail.To, err)
	}
	return nil
}

func (s *Sender) message(mail email.Mail) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.address, mail.From)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", string(mail.Body))
	for _, att := range mail.Attachments {
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return m
}
