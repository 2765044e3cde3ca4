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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPackage(t *testing.T) {
	testCases := []struct {
		name  string
		items []Item
		want  Package
	}{
		{
			name: "单件商品",
			items: []Item{
				{Weight: 200, Length: 10, Width: 30, Height: 5, Quantity: 3},
			},
			want: Package{Weight: 600, Length: 30, Width: 10, Height: 5},
		},
		{
			name: "多件商品取每个维度的最大值",
			items: []Item{
				{Weight: 100, Length: 20, Width: 5, Height: 5, Quantity: 2},
				{Weight: 300, Length: 8, Width: 15, Height: 40, Quantity: 1},
			},
			want: Package{Weight: 500, Length: 40, Width: 20, Height: 15},
		},
		{
			name: "空",
			want: Package{},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPackage(tc.items))
		})
	}
}
