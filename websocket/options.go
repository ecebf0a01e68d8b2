// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package websocket

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/pflag"
)

// Options contains configuration options.
type Options struct {
	URL              string        `json:"url"               mapstructure:"url"`
	HandshakeTimeout time.Duration `json:"handshake-timeout" mapstructure:"handshake-timeout"`
	WriteTimeout     time.Duration `json:"write-timeout"     mapstructure:"write-timeout"`
	PingInterval     time.Duration `json:"ping-interval"     mapstructure:"ping-interval"`
	ReadBufferSize   int           `json:"read-buffer-size"  mapstructure:"read-buffer-size"`
	WriteBufferSize  int           `json:"write-buffer-size" mapstructure:"write-buffer-size"`
	Compression      bool          `json:"compression"       mapstructure:"compression"`
}

// NewOptions return a new options for client.
func NewOptions() *Options {
	return &Options{
		URL:              "ws://127.0.0.1:9000/",
		HandshakeTimeout: 10 * time.Second,
		WriteTimeout:     10 * time.Second,
		PingInterval:     10 * time.Second,
		ReadBufferSize:   4096,
		WriteBufferSize:  4096,
		Compression:      true,
	}
}

func (o *Options) Validate() []error {
	var errs []error
	u, err := url.Parse(o.URL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("--websocket.url %q is invalid: %v", o.URL, err))
	case u.Scheme != "ws" && u.Scheme != "wss":
		errs = append(errs, fmt.Errorf("--websocket.url %q must use the ws or wss scheme", o.URL))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("--websocket.url %q has no host", o.URL))
	}
	if o.HandshakeTimeout <= 0 {
		errs = append(errs, fmt.Errorf("--websocket.handshake-timeout %v must be positive", o.HandshakeTimeout))
	}
	if o.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("--websocket.write-timeout %v must be positive", o.WriteTimeout))
	}
	if o.PingInterval < 0 {
		errs = append(errs, fmt.Errorf("--websocket.ping-interval %v must not be negative", o.PingInterval))
	}
	if o.ReadBufferSize < 0 || o.WriteBufferSize < 0 {
		errs = append(errs, fmt.Errorf("--websocket buffer sizes must not be negative"))
	}
	return errs
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.URL, "websocket.url", o.URL, "The websocket endpoint of the queueing service")
	fs.DurationVar(&o.HandshakeTimeout, "websocket.handshake-timeout", o.HandshakeTimeout, "Timeout of the websocket opening handshake")
	fs.DurationVar(&o.WriteTimeout, "websocket.write-timeout", o.WriteTimeout, "Time allowed to write a message to the peer")
	fs.DurationVar(&o.PingInterval, "websocket.ping-interval", o.PingInterval, "Send pings to peer with this period, 0 disables pings")
	fs.IntVar(&o.ReadBufferSize, "websocket.read-buffer-size", o.ReadBufferSize, "The byte size of websocket read buffer")
	fs.IntVar(&o.WriteBufferSize, "websocket.write-buffer-size", o.WriteBufferSize, "The byte size of websocket write buffer")
	fs.BoolVar(&o.Compression, "websocket.compression", o.Compression, "Enable compression for websocket message")
}
