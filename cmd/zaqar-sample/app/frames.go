// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uitable"
	"github.com/hokaccha/go-prettyjson"

	"github.com/wangtaoking1/zaqar-sample/app"
	"github.com/wangtaoking1/zaqar-sample/cmd/zaqar-sample/app/options"
)

func framesCommand(opts *options.FramesOptions) app.Command {
	return app.NewCommand("frames",
		"Print the sample frames without connecting",
		app.WithCmdDescription("Print the authenticate and message_post frames in the order they are sent."),
		app.WithCmdOptions(opts),
		app.WithCmdRunFunc(func(name string) error {
			return printFrames(os.Stdout, opts)
		}),
	)
}

func printFrames(w io.Writer, opts *options.FramesOptions) error {
	table := uitable.New()
	table.AddRow("SEQ", "ACTION", "BYTES")

	for i, req := range opts.Zaqar.Requests() {
		data, err := req.Encode()
		if err != nil {
			return err
		}
		table.AddRow(i+1, req.Action, len(data))

		if opts.Raw {
			fmt.Fprintln(w, string(data))
			continue
		}
		pj, err := prettyjson.Format(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s\n", string(pj))
	}

	if !opts.Raw {
		fmt.Fprintf(w, "\n%s\n", table)
	}

	return nil
}
