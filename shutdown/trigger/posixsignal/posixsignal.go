// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package posixsignal

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/wangtaoking1/zaqar-sample/shutdown"
)

// Name defines shutdown manager name.
const Name = "PosixSignalTrigger"

// trigger implements the shutdown Trigger interface that is added
// to GracefulShutdown. Initialize with New.
type trigger struct {
	signals []os.Signal
}

// GetName returns name of this trigger.
func (t *trigger) GetName() string {
	return Name
}

// Start starts listening for posix signals. Only the first signal triggers
// the shutdown, later ones get the default behaviour and kill the process.
func (t *trigger) Start(executor shutdown.Executor) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, t.signals...)

	go func() {
		// Block until a signal is received.
		<-c
		signal.Stop(c)

		// Trigger the shutdown execution.
		executor.Execute(t)
	}()

	return nil
}

// After does nothing, the application exits when its run returns.
func (t *trigger) After() {}

// New initializes the PosixSignalTrigger.
// You can provide os.Signal-s as arguments, if none given,
// it will use SIGINT and SIGTERM default.
func New(sig ...os.Signal) shutdown.Trigger {
	if len(sig) == 0 {
		sig = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	return &trigger{
		signals: sig,
	}
}
