// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wangtaoking1/zaqar-sample/flag"
	"github.com/wangtaoking1/zaqar-sample/log"
	"github.com/wangtaoking1/zaqar-sample/sample"
	"github.com/wangtaoking1/zaqar-sample/websocket"
)

// Options runs the sample against a Zaqar websocket endpoint.
type Options struct {
	// Linger is how long responses are collected after the frames are sent.
	Linger time.Duration `json:"linger" mapstructure:"linger"`

	Log       *log.Options       `json:"log"       mapstructure:"log"`
	WebSocket *websocket.Options `json:"websocket" mapstructure:"websocket"`
	Zaqar     *sample.Options    `json:"zaqar"     mapstructure:"zaqar"`
}

// NewOptions creates a new Options object with default parameters.
func NewOptions() *Options {
	return &Options{
		Linger:    2 * time.Second,
		Log:       log.NewOptions(),
		WebSocket: websocket.NewOptions(),
		Zaqar:     sample.NewOptions(),
	}
}

// Flags returns flags for the command by section name.
func (o *Options) Flags() (fss flag.NamedFlagSets) {
	o.Zaqar.AddFlags(fss.FlagSet("zaqar"))
	o.WebSocket.AddFlags(fss.FlagSet("websocket"))
	o.Log.AddFlags(fss.FlagSet("log"))

	fs := fss.FlagSet("generic")
	fs.DurationVar(&o.Linger, "linger", o.Linger, "How long to log responses after the frames are sent")

	return fss
}

// Complete fills the values that have a generated default.
func (o *Options) Complete() error {
	return o.Zaqar.Complete()
}

// Validate checks Options and return a slice of found errs.
func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.Zaqar.Validate()...)
	errs = append(errs, o.WebSocket.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	if o.Linger < 0 {
		errs = append(errs, fmt.Errorf("--linger %v must not be negative", o.Linger))
	}

	return errs
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}

// FramesOptions prints the sample frames without connecting.
type FramesOptions struct {
	Zaqar *sample.Options `json:"zaqar" mapstructure:"zaqar"`
	// Raw prints the frames exactly as they are sent.
	Raw bool `json:"raw" mapstructure:"raw"`
}

// NewFramesOptions creates a new FramesOptions object with default parameters.
func NewFramesOptions() *FramesOptions {
	return &FramesOptions{
		Zaqar: sample.NewOptions(),
	}
}

func (o *FramesOptions) Flags() (fss flag.NamedFlagSets) {
	o.Zaqar.AddFlags(fss.FlagSet("zaqar"))
	fss.FlagSet("generic").BoolVar(&o.Raw, "raw", o.Raw, "Print the frames as sent instead of formatted")

	return fss
}

func (o *FramesOptions) Complete() error {
	return o.Zaqar.Complete()
}

func (o *FramesOptions) Validate() []error {
	return o.Zaqar.Validate()
}
