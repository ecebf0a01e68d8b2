// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// zaqar-sample authenticates against a Zaqar websocket endpoint and posts
// messages to a queue.
package main

import (
	"github.com/wangtaoking1/zaqar-sample/cmd/zaqar-sample/app"
)

func main() {
	app.NewApp("zaqar-sample").Run()
}
