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

package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "internal/pkg/database/tracing"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 为所有数据库操作添加 OpenTelemetry 追踪
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	ops := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{operation: "SELECT", before: cb.Query().Before("gorm:query").Register, after: cb.Query().After("gorm:query").Register},
		{operation: "INSERT", before: cb.Create().Before("gorm:create").Register, after: cb.Create().After("gorm:create").Register},
		{operation: "UPDATE", before: cb.Update().Before("gorm:update").Register, after: cb.Update().After("gorm:update").Register},
		{operation: "DELETE", before: cb.Delete().Before("gorm:delete").Register, after: cb.Delete().After("gorm:delete").Register},
		{operation: "RAW", before: cb.Raw().Before("gorm:raw").Register, after: cb.Raw().After("gorm:raw").Register},
	}
	for _, op := range ops {
		if err := op.before("tracing:before_"+op.operation, p.before(op.operation)); err != nil {
			return err
		}
		if err := op.after("tracing:after_"+op.operation, p.after(op.operation)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement != nil && db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		spanName := "SQL " + operation
		if db.Statement != nil && db.Statement.Table != "" {
			spanName = fmt.Sprintf("%s %s", db.Statement.Table, operation)
		}
		ctx, span := p.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.Get(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", "mysql"),
			attribute.String("db.name", db.Dialector.Name()),
			attribute.String("db.operation", operation),
		}
		if db.Statement.Schema != nil {
			attrs = append(attrs, attribute.String("db.table", db.Statement.Schema.Table))
		} else if db.Statement.Table != "" {
			attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
		}
		if sql := db.Statement.SQL.String(); sql != "" {
			attrs = append(attrs, attribute.String("db.statement", sql))
		}
		attrs = append(attrs, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		span.SetAttributes(attrs...)
		// 查不到数据不算错误
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
