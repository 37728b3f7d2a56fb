package tracing

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestStartTracing(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		// when
		ctx, span := StartTracing(context.Background(), "op", false)

		// then
		assert.Nil(t, span)
		assert.NotNil(t, ctx)
		EndTracing(span, errors.New("ignored"))
	})

	t.Run("enabled", func(t *testing.T) {
		// when
		_, span := StartTracing(context.Background(), "op", true, attribute.String("module", "node"))

		// then
		require.NotNil(t, span)
		EndTracing(span, errors.New("failed"))
	})
}

func TestSampler(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", Sampler(0).Description())
	assert.Equal(t, "AlwaysOnSampler", Sampler(100).Description())
	assert.Equal(t, "TraceIDRatioBased{0.25}", Sampler(25).Description())
}

func TestEnable_EmptyDialAddr(t *testing.T) {
	// when
	cleanup, err := Enable(slog.Default(), "powledger", "test", "", 100)

	// then
	require.ErrorIs(t, err, ErrDialAddrEmpty)
	assert.Nil(t, cleanup)
}
