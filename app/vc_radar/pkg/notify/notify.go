// Package notify 晨报推送
package notify

import (
	"context"
	"fmt"
	"io"
)

// Sink 推送通道
type Sink interface {
	Send(ctx context.Context, title, body string) error
}

// DeliveryError 推送失败，调用方视为整次运行失败
type DeliveryError struct {
	Sink string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver via %s: %v", e.Sink, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// WriterSink 把晨报写到 io.Writer，用于 dry-run 与本地调试
type WriterSink struct {
	w io.Writer
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink 创建写出通道
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Send 写出标题与正文
func (s *WriterSink) Send(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Sink: "writer", Err: err}
	}
	if _, err := fmt.Fprintf(s.w, "# %s\n\n%s\n", title, body); err != nil {
		return &DeliveryError{Sink: "writer", Err: err}
	}
	return nil
}
