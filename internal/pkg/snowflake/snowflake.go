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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

// Generator 基于雪花算法生成全局唯一的 ID，多实例部署时 node 必须不同
type Generator struct {
	node *snowflake.Node
}

func NewGenerator(node int64) (*Generator, error) {
	if node < 0 || node > maxNode {
		return nil, fmt.Errorf("%w: node = %d", ErrExceedNode, node)
	}
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}
	return &Generator{node: n}, nil
}

func (g *Generator) Generate() int64 {
	return g.node.Generate().Int64()
}

// GenerateSN 生成带业务前缀的序列号，例如 PAY1790000000000000000
func (g *Generator) GenerateSN(prefix string) string {
	return prefix + g.node.Generate().String()
}
