// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wangtaoking1/zaqar-sample/cmd/zaqar-sample/app/options"
	"github.com/wangtaoking1/zaqar-sample/log"
	"github.com/wangtaoking1/zaqar-sample/sample"
	"github.com/wangtaoking1/zaqar-sample/shutdown"
	"github.com/wangtaoking1/zaqar-sample/shutdown/trigger/posixsignal"
	"github.com/wangtaoking1/zaqar-sample/websocket"
)

// Run sends the sample frames and logs the responses until the linger period
// ends or the process is asked to stop.
func Run(opts *options.Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gs := shutdown.New(posixsignal.New())
	gs.AddCallback(shutdown.CancelFunc(cancel))
	gs.AddCallback(shutdown.CallbackFunc(func(trigger string) error {
		log.Info("Shutdown is triggered", "trigger", trigger)
		return nil
	}))
	if err := gs.Start(); err != nil {
		return err
	}

	return runSample(ctx, opts)
}

func runSample(ctx context.Context, opts *options.Options) error {
	ctx = log.WithContext(ctx, "queue", opts.Zaqar.QueueName, "client_id", opts.Zaqar.ClientID)

	responses := sample.NewResponseLogger()
	client, err := websocket.Dial(ctx, opts.WebSocket, responses)
	if err != nil {
		return err
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	var eg errgroup.Group
	eg.Go(func() error {
		defer stop()
		client.Run(runCtx)
		return nil
	})
	eg.Go(func() error {
		defer stop()
		if err := sample.Send(runCtx, client, opts.Zaqar); err != nil {
			return err
		}

		timer := time.NewTimer(opts.Linger)
		defer timer.Stop()
		select {
		case <-runCtx.Done():
		case <-timer.C:
		}
		return nil
	})
	err = eg.Wait()

	logSummary(ctx, responses)

	return err
}

func logSummary(ctx context.Context, responses *sample.ResponseLogger) {
	var accepted, rejected int
	for _, resp := range responses.Responses() {
		if resp.IsSuccess() {
			accepted++
		} else {
			rejected++
		}
	}
	log.From(ctx).Infow("Sample finished", "accepted", accepted, "rejected", rejected)
}
