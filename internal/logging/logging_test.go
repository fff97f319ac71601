package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	cl := ComponentLogger(logger, "cli")
	cl.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"cli"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	ctx = ContextWithTraceID(ctx, "trace-123")
	assert.Equal(t, "trace-123", TraceIDFromContext(ctx))
	assert.Equal(t, "trace-123", GetOrGenerateTraceID(ctx))
}

func TestGetOrGenerateTraceID(t *testing.T) {
	id := GetOrGenerateTraceID(context.Background())
	require.NotEmpty(t, id)
	assert.Len(t, id, 26) // ULID canonical encoding
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	fromCtx := FromContext(ctx)
	fromCtx.Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}
