// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/wangtaoking1/zaqar-sample/app"
	"github.com/wangtaoking1/zaqar-sample/cmd/zaqar-sample/app/options"
	"github.com/wangtaoking1/zaqar-sample/log"
)

const commandDesc = `zaqar-sample connects to the websocket endpoint of a Zaqar queueing service,
authenticates the connection with the given token and project, and posts the
given messages to a queue. Responses of the service are logged for a short
linger period before the connection is closed.`

// NewApp creates an App object with default parameters.
func NewApp(basename string) app.App {
	opts := options.NewOptions()
	application := app.NewApp(basename,
		"Zaqar websocket sample",
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithCommands(framesCommand(options.NewFramesOptions())),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		if err := log.Init(opts.Log); err != nil {
			return err
		}
		defer log.Flush()

		return Run(opts)
	}
}
