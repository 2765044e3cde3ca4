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

package sequencenumber

import (
	"fmt"
	"time"
)

// ClockFunc 返回当前时间，测试的时候可以替换
type ClockFunc func() time.Time

// Generator 订单号生成器。
// 订单号 = 6 位用户 ID（不足补零，超出取模）+ yyyyMMdd + 8 位当天毫秒数。
// 同一个用户同一毫秒内下两单会撞号，所以存储层必须有唯一索引兜底。
type Generator struct {
	clock ClockFunc
}

func NewGeneratorWith(clock ClockFunc) *Generator {
	return &Generator{clock: clock}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now)
}

func (g *Generator) Generate(uid int64) string {
	return g.GenerateAt(uid, g.clock())
}

func (g *Generator) GenerateAt(uid int64, t time.Time) string {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	ms := t.Sub(midnight).Milliseconds()
	return fmt.Sprintf("%06d%s%08d", uid%1000000, t.Format("20060102"), ms)
}
