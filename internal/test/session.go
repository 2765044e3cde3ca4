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

package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 只从 gin.Context 里面取测试预先放进去的 session
type SessionProvider struct{}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(session.CtxSessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(session.CtxSessionKey)
	if !ok {
		return nil, errors.New("测试请求没有设置 session")
	}
	return val.(session.Session), nil
}

// LoginAs 模拟登录，claims 用来设置 admin 之类的标记
func LoginAs(uid int64, claims map[string]string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: uid, Data: claims}))
	}
}
