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

package ioc

import (
	"github.com/ecodeclub/checkout/internal/email"
	"github.com/ecodeclub/checkout/internal/email/aliyun"
	"github.com/ecodeclub/checkout/internal/email/smtp"
	"github.com/gotomicro/ego/core/econf"
)

// InitEmailService 默认走 SMTP，配置了 aliyun 的时候改用阿里云邮件推送
func InitEmailService() email.Service {
	type Config struct {
		Provider string        `yaml:"provider"`
		SMTP     smtp.Config   `yaml:"smtp"`
		Aliyun   aliyun.Config `yaml:"aliyun"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Provider == "aliyun" {
		svc, er := aliyun.NewDirectMailSender(cfg.Aliyun)
		if er != nil {
			panic(er)
		}
		return svc
	}
	return smtp.NewSender(cfg.SMTP)
}
