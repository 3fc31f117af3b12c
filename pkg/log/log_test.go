// Copyright 2019 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitTestLogger(t *testing.T) {
	conf := &Config{Level: "debug", DisableTimestamp: true}
	logger, properties, err := InitTestLogger(t, conf)
	assert.NoError(t, err)
	ReplaceGlobals(logger, properties)

	Debug("debug message", zap.String("case", "init"))
	Info("info message", FieldModule("log"))
	With(FieldComponent("tester")).Info("with fields")
}

func TestLevelChange(t *testing.T) {
	conf := &Config{Level: "info", DisableTimestamp: true}
	logger, properties, err := InitTestLogger(t, conf)
	assert.NoError(t, err)
	ReplaceGlobals(logger, properties)

	assert.Equal(t, zapcore.InfoLevel, GetLevel())
	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, GetLevel())
	SetLevel(zapcore.InfoLevel)
}

func TestRatedLog(t *testing.T) {
	conf := &Config{Level: "debug", DisableTimestamp: true}
	logger, properties, err := InitTestLogger(t, conf)
	assert.NoError(t, err)
	ReplaceGlobals(logger, properties)

	// 初始余额允许第一条通过，之后的补充速率近似于零。
	l := With(FieldModule("rated")).WithRateGroup("log.test", 0.0001, 1)
	assert.True(t, l.RatedWarn(1, "first passes"))
	assert.False(t, l.RatedWarn(1, "second dropped"))
}

func TestContextLogger(t *testing.T) {
	conf := &Config{Level: "debug", DisableTimestamp: true}
	logger, properties, err := InitTestLogger(t, conf)
	assert.NoError(t, err)
	ReplaceGlobals(logger, properties)

	ctx := WithModule(context.Background(), "codec")
	Ctx(ctx).Info("from context")

	ctx = WithFields(ctx, zap.String("extra", "field"))
	Ctx(ctx).Info("with extra field")

	// 未附加 Logger 的 ctx 回退到全局 Logger，不允许 panic。
	Ctx(context.Background()).Info("fallback")
}
