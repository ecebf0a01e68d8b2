// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package homedir

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

// HomeDir returns the home directory of the current user, falling back to
// the working directory when it can not be detected.
func HomeDir() string {
	if dir, err := homedir.Dir(); err == nil && dir != "" {
		return dir
	}
	wd, _ := os.Getwd()

	return wd
}
