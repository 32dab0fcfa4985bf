package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/supplier_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/supplier_orders/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.FromZap(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithScreen(ctx, "orders")
	l.Warnf(ctx, "cache %s", "miss")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "cache miss", entries[0].Message)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "orders", fields["screen"])
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.FromZap(zap.New(core))
	ctx := context.Background()

	l.Debugf(ctx, "d")
	l.Infof(ctx, "i")
	l.Errorf(ctx, "e")

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	require.Empty(t, entries[1].Context)
}

func TestNewZapLogger_Dev(t *testing.T) {
	l, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	require.NotNil(t, l)
	require.False(t, l.IsProd())
	_ = cleanup()
}
