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
	"errors"
	"testing"

	"github.com/alibabacloud-go/tea/tea"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "SDK错误",
			err: &tea.SDKError{
				Message: tea.String("InvalidToAddress"),
				Data:    tea.String(`{"Recommend":"https://next.api.aliyun.com","RequestId":"req-1"}`),
			},
			want: "阿里云邮件推送失败: InvalidToAddress | 建议: https://next.api.aliyun.com | RequestId: req-1",
		},
		{
			name: "普通错误",
			err:  errors.New("timeout"),
			want: "邮件发送失败: timeout",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wrapError(tc.err).Error())
		})
	}
}
