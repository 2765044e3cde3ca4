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

import "sort"

// Item 参与计算包裹尺寸的一行商品，尺寸单位都是 cm，重量单位是 g
type Item struct {
	Weight   int64
	Length   int64
	Width    int64
	Height   int64
	Quantity int64
}

type Package struct {
	Weight int64
	Length int64
	Width  int64
	Height int64
}

type Destination struct {
	DistrictID int64
	WardCode   string
}

// NewPackage 重量累加，每个维度取最大值，最后按 长 >= 宽 >= 高 排列
func NewPackage(items []Item) Package {
	var (
		weight int64
		dims   [3]int64
	)
	for _, it := range items {
		weight += it.Weight * it.Quantity
		dims[0] = max(dims[0], it.Length)
		dims[1] = max(dims[1], it.Width)
		dims[2] = max(dims[2], it.Height)
	}
	sort.Slice(dims[:], func(i, j int) bool {
		return dims[i] > dims[j]
	})
	return Package{
		Weight: weight,
		Length: dims[0],
		Width:  dims[1],
		Height: dims[2],
	}
}
