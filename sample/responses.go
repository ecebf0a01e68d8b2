// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package sample

import (
	"context"
	"sync"

	"github.com/wangtaoking1/zaqar-sample/log"
	"github.com/wangtaoking1/zaqar-sample/websocket"
	"github.com/wangtaoking1/zaqar-sample/zaqar"
)

// ResponseLogger logs the responses the service sends back for the frames.
// It keeps the parsed responses so callers can summarize them.
type ResponseLogger struct {
	mu        sync.Mutex
	responses []*zaqar.Response
}

var _ websocket.Dispatcher = (*ResponseLogger)(nil)

// NewResponseLogger returns an empty ResponseLogger.
func NewResponseLogger() *ResponseLogger {
	return &ResponseLogger{}
}

func (l *ResponseLogger) Dispatch(ctx context.Context, _ websocket.Writer, data []byte) {
	logger := log.From(ctx)
	resp, err := zaqar.ParseResponse(data)
	if err != nil {
		logger.Errorw("Unparsable response", "error", err, "frame", string(data))
		return
	}

	l.mu.Lock()
	l.responses = append(l.responses, resp)
	l.mu.Unlock()

	if !resp.IsSuccess() {
		logger.Warnw("Request rejected", "action", resp.Action, "status", resp.Status, "error", resp.ErrorMessage())
		return
	}
	logger.Infow("Request accepted", "action", resp.Action, "status", resp.Status)
}

// Responses returns the responses received so far.
func (l *ResponseLogger) Responses() []*zaqar.Response {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*zaqar.Response, len(l.responses))
	copy(out, l.responses)

	return out
}
