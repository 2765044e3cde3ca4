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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const expectedSNLength = 22

func TestGenerator_GenerateAt(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	testCases := []struct {
		name     string
		uid      int64
		at       time.Time
		expected string
	}{
		{
			name:     "用户ID不足6位补零",
			uid:      42,
			at:       time.Date(2024, 3, 5, 0, 0, 1, 5*int(time.Millisecond), loc),
			expected: "0000422024030500001005",
		},
		{
			name:     "用户ID超过6位取模",
			uid:      1234567,
			at:       time.Date(2024, 12, 31, 23, 59, 59, 999*int(time.Millisecond), loc),
			expected: "2345672024123186399999",
		},
		{
			name:     "零点",
			uid:      999999,
			at:       time.Date(2025, 1, 1, 0, 0, 0, 0, loc),
			expected: "9999992025010100000000",
		},
	}
	g := NewGenerator()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sn := g.GenerateAt(tc.uid, tc.at)
			assert.Equal(t, tc.expected, sn)
			assert.Len(t, sn, expectedSNLength)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	g := NewGeneratorWith(func() time.Time { return now })
	assert.Equal(t, "0000072024060136000000", g.Generate(7))
	// 时钟不变的情况下，同一用户会生成同一个订单号
	assert.Equal(t, g.Generate(7), g.Generate(7))
}
