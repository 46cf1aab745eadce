package logger_test

import (
	"context"
	"testing"
	"tracker/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, environment := range []string{
		logger.DevelopmentEnvironment,
		logger.ProductionEnvironment,
		"staging",
	} {
		t.Run(environment, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(environment) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Equal(t, custom, logger.Get(ctx))
	require.NotEqual(t, custom, logger.Get(context.Background()))
}

func TestWithFields_PropagatesToEntries(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("project", "Gearbox NG"))
	ctx = logger.WithFields(ctx, zap.String("gateway", "D2"))
	logger.Info(ctx, "plan committed")

	entries := observed.All()
	require.Len(t, entries, 1)
	require.Equal(t, "plan committed", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "Gearbox NG", fields["project"])
	require.Equal(t, "D2", fields["gateway"])
}

func TestLevels(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Len(t, observed.All(), 4)
}

func TestIsDebug(t *testing.T) {
	debugCore, _ := observer.New(zap.DebugLevel)
	infoCore, _ := observer.New(zap.InfoLevel)

	ctx := context.Background()
	require.True(t, logger.IsDebug(logger.WithLogger(ctx, zap.New(debugCore))))
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, zap.New(infoCore))))
}
