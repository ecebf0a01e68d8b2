// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package sample authenticates an open websocket connection against Zaqar
// and posts messages to a queue.
package sample

import (
	"context"

	"github.com/wangtaoking1/zaqar-sample/errors"
	"github.com/wangtaoking1/zaqar-sample/log"
	"github.com/wangtaoking1/zaqar-sample/websocket"
)

// Send writes the authenticate frame and then the message_post frame to w.
// It is called once the connection is open. Responses are not awaited, and
// the first failed write is returned without sending anything after it.
func Send(ctx context.Context, w websocket.Writer, opts *Options) error {
	logger := log.From(ctx)
	for _, req := range opts.Requests() {
		data, err := req.Encode()
		if err != nil {
			return err
		}
		if err := w.WriteText(ctx, data); err != nil {
			return errors.WithMessagef(err, "send %s frame", req.Action)
		}
		logger.Infow("Frame sent", "action", req.Action, "bytes", len(data))
	}

	return nil
}
