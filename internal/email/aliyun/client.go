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

package aliyun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"
	"github.com/ecodeclub/checkout/internal/email"
)

type Config struct {
	AccessKeyID     string `yaml:"accessKeyID"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	// AccountName 控制台配置的发信地址
	AccountName string `yaml:"accountName"`
	Endpoint    string `yaml:"endpoint"`
}

// DirectMailSender 使用阿里云邮件推送发送订单邮件
type DirectMailSender struct {
	client      *dm20151123.Client
	accountName string
}

func NewDirectMailSender(cfg Config) (*DirectMailSender, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "dm.aliyuncs.com"
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云邮件推送客户端失败: %w", err)
	}
	return &DirectMailSender{
		client:      client,
		accountName: cfg.AccountName,
	}, nil
}

func (a *DirectMailSender) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	request := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName: tea.String(a.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	for idx := range mail.Attachments {
		att := &dm20151123.SingleSendMailAdvanceRequestAttachments{}
		att.SetAttachmentName(mail.Attachments[idx].Filename)
		att.SetAttachmentUrlObject(bytes.NewReader(mail.Attachments[idx].Content))
		request.Attachments = append(request.Attachments, att)
	}
	_, err := a.client.SingleSendMailAdvance(request, &util.RuntimeOptions{})
	if err != nil {
		return wrapError(err)
	}
	return nil
}

func wrapError(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送失败: %s", tea.StringValue(sdkErr.Message))
	var data map[string]any
	if sdkErr.Data != nil {
		_ = json.NewDecoder(strings.NewReader(tea.StringValue(sdkErr.Data))).Decode(&data)
	}
	if recommend, ok := data["Recommend"]; ok {
		msg += fmt.Sprintf(" | 建议: %v", recommend)
	}
	if requestID, ok := data["RequestId"]; ok {
		msg += fmt.Sprintf(" | RequestId: %v", requestID)
	}
	return errors.New(msg)
}
