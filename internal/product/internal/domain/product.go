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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1 // 下架
	StatusOnShelf  Status = 2 // 上架
)

// Dimension 包装规格，重量单位为克，长宽高单位为厘米
type Dimension struct {
	Weight int64
	Length int64
	Width  int64
	Height int64
}

// Price 金额单位为最小货币单位
type Price struct {
	List int64
	Sale int64
}

// Unit 有促销价就用促销价
func (p Price) Unit() int64 {
	if p.Sale > 0 {
		return p.Sale
	}
	return p.List
}

type Product struct {
	ID        int64
	SN        string
	Name      string
	Desc      string
	Price     Price
	Dimension Dimension
	Status    Status
	Variants  []Variant
}

func (p Product) Sellable() bool {
	return p.Status == StatusOnShelf
}

func (p Product) FindVariant(id int64) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Variant 商品的一个具体规格，例如颜色、尺码，有自己的价格和库存
type Variant struct {
	ID        int64
	ProductID int64
	SKU       string
	Name      string
	Price     Price
	// 为零的字段沿用商品上的规格
	Dimension Dimension
	Status    Status
}

func (v Variant) Sellable() bool {
	return v.Status == StatusOnShelf
}
