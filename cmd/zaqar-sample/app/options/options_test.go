// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Flags(t *testing.T) {
	opts := NewOptions()
	fss := opts.Flags()
	assert.Equal(t, []string{"zaqar", "websocket", "log", "generic"}, fss.Order)

	require.NoError(t, fss.FlagSets["zaqar"].Parse([]string{"--zaqar.project-id=p1"}))
	require.NoError(t, fss.FlagSets["generic"].Parse([]string{"--linger=5s"}))
	assert.Equal(t, "p1", opts.Zaqar.ProjectID)
	assert.Equal(t, 5*time.Second, opts.Linger)
}

func TestOptions_Validate(t *testing.T) {
	opts := NewOptions()
	require.NoError(t, opts.Complete())
	// token and project id have no defaults
	assert.Len(t, opts.Validate(), 2)

	opts.Zaqar.AuthToken = "token"
	opts.Zaqar.ProjectID = "project"
	assert.Empty(t, opts.Validate())

	opts.Linger = -time.Second
	opts.WebSocket.URL = "http://127.0.0.1:9000"
	assert.Len(t, opts.Validate(), 2)
}

func TestOptions_StringHidesToken(t *testing.T) {
	opts := NewOptions()
	opts.Zaqar.AuthToken = "secret-token"

	assert.NotContains(t, opts.String(), "secret-token")
	assert.Contains(t, opts.String(), "SampleQueue")
}
