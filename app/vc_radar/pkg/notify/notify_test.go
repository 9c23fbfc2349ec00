package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSink_Send(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, NewWriterSink(&buf).Send(context.Background(), "标题", "正文"))
	assert.Equal(t, "# 标题\n\n正文\n", buf.String())
}

func TestWriterSink_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWriterSink(&bytes.Buffer{}).Send(ctx, "t", "b")
	var de *DeliveryError
	assert.ErrorAs(t, err, &de)
	assert.True(t, errors.Is(err, context.Canceled))
}
