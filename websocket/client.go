// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wangtaoking1/zaqar-sample/errors"
	"github.com/wangtaoking1/zaqar-sample/log"
)

// ErrClientClosed is returned when writing to a closed client.
var ErrClientClosed = errors.New("websocket client closed")

// Client is a websocket connection to a queueing service endpoint.
type Client struct {
	url        string
	opts       *Options
	dispatcher Dispatcher
	conn       *websocket.Conn

	writeMu   sync.Mutex
	stopOnce  sync.Once
	closeOnce sync.Once
	stopCh    chan struct{}
}

var _ Writer = (*Client)(nil)

// Dial opens a connection to opts.URL. Frames received from the peer are
// handed to dispatcher once Run is called, dispatcher may be nil.
func Dial(ctx context.Context, opts *Options, dispatcher Dispatcher) (*Client, error) {
	dialer := &websocket.Dialer{
		Proxy:             http.ProxyFromEnvironment,
		HandshakeTimeout:  opts.HandshakeTimeout,
		ReadBufferSize:    opts.ReadBufferSize,
		WriteBufferSize:   opts.WriteBufferSize,
		EnableCompression: opts.Compression,
	}
	conn, resp, err := dialer.DialContext(ctx, opts.URL, nil)
	if err != nil {
		if resp != nil {
			return nil, errors.Wrapf(err, "dial %s, status: %d", opts.URL, resp.StatusCode)
		}
		return nil, errors.Wrapf(err, "dial %s", opts.URL)
	}
	log.Infow("Websocket connected", "url", opts.URL)

	return newClient(opts, conn, dispatcher), nil
}

func newClient(opts *Options, conn *websocket.Conn, dispatcher Dispatcher) *Client {
	return &Client{
		url:        opts.URL,
		opts:       opts,
		dispatcher: dispatcher,
		conn:       conn,
		stopCh:     make(chan struct{}),
	}
}

// Run reads frames from the peer until ctx is done, the client is closed or
// the connection breaks. The connection is closed when Run returns.
func (c *Client) Run(ctx context.Context) {
	if c.opts.PingInterval > 0 {
		heartbeatTimeout := 3 * c.opts.PingInterval
		_ = c.conn.SetReadDeadline(time.Now().Add(heartbeatTimeout))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(heartbeatTimeout))
		})
	}

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.pingLoop()
	}()
	go func() {
		defer wg.Done()
		c.readLoop(ctx)
	}()

	select {
	case <-ctx.Done():
	case <-c.stopCh:
	}
	_ = c.Close()
	wg.Wait()
	log.Infow("Websocket client closed", "url", c.url)
}

func (c *Client) pingLoop() {
	if c.opts.PingInterval <= 0 {
		return
	}
	pingTicker := time.NewTicker(c.opts.PingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-pingTicker.C:
			err := c.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(c.opts.WriteTimeout))
			if err != nil {
				log.Errorf("Write ping message error: %v", err)
				c.stop()
				return
			}
		}
	}
}

func (c *Client) readLoop(ctx context.Context) {
	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.stopCh:
			default:
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Errorf("Connection unexpected close: %v", err)
				} else {
					log.Infof("Connection closed: %v", err)
				}
			}
			c.stop()
			return
		}
		if messageType != websocket.TextMessage {
			log.Debug("Skip non text message", "type", messageType)
			continue
		}
		c.handleMessage(ctx, message)
	}
}

func (c *Client) handleMessage(ctx context.Context, data []byte) {
	if c.dispatcher == nil {
		return
	}
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("Handle message panic: %v", err)
		}
	}()

	c.dispatcher.Dispatch(ctx, c, data)
}

// WriteText writes data as a single text frame. Concurrent callers are
// serialized, each write completes before the next one starts.
func (c *Client) WriteText(ctx context.Context, data []byte) error {
	select {
	case <-c.stopCh:
		return ErrClientClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline := time.Now().Add(c.opts.WriteTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = c.conn.SetWriteDeadline(deadline)
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return errors.Wrap(err, "write text message")
	}

	return nil
}

// Close sends a normal closure frame to the peer and closes the connection.
// It is safe to call Close more than once.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.stop()
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.opts.WriteTimeout))
		err = c.conn.Close()
	})

	return err
}

func (c *Client) stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}
