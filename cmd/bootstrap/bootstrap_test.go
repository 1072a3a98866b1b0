package bootstrap

import (
	"errors"
	"testing"

	"github.com/muhammadheryan/table-booking/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestApp_Close(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.Get()
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(prev) })

	var order []string
	app := &App{closers: []closer{
		{name: "redis", close: func() error {
			order = append(order, "redis")
			return errors.New("connection reset")
		}},
		{name: "rabbitmq", close: func() error {
			order = append(order, "rabbitmq")
			return nil
		}},
	}}

	app.Close()

	assert.Equal(t, []string{"rabbitmq", "redis"}, order)
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "[App.Close] err close redis", entries[0].Message)
	assert.Equal(t, "connection reset", entries[0].ContextMap()["error"])
}
