// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package websocket

import "context"

// Writer sends text frames over an open connection.
type Writer interface {
	// WriteText writes one text frame and returns once it has been handed
	// to the network, or with the error that prevented it.
	WriteText(ctx context.Context, data []byte) error
}

// Dispatcher handles the text frames received from the peer.
type Dispatcher interface {
	Dispatch(ctx context.Context, writer Writer, data []byte)
}

// DispatchFunc adapts a function to the Dispatcher interface.
type DispatchFunc func(ctx context.Context, writer Writer, data []byte)

func (f DispatchFunc) Dispatch(ctx context.Context, writer Writer, data []byte) {
	f(ctx, writer, data)
}
