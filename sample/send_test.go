// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package sample

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken    = "8444886dd9b04a1b87ddb502b508261c"
	testProject  = "7530fad032ca431e9dc8ed4a5de5d99c"
	testClientID = "355186cd-d1e8-4108-a3ac-a2183697232a"
)

type fakeWriter struct {
	mu     sync.Mutex
	frames []string
	// failAt makes the write of frame failAt (1-based) fail.
	failAt int
	err    error
}

func (w *fakeWriter) WriteText(ctx context.Context, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.failAt == len(w.frames)+1 {
		return w.err
	}
	w.frames = append(w.frames, string(data))
	return nil
}

func testSampleOptions() *Options {
	opts := NewOptions()
	opts.AuthToken = testToken
	opts.ProjectID = testProject
	opts.ClientID = testClientID
	return opts
}

func decode(t *testing.T, frame string) map[string]any {
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(frame), &v))
	return v
}

func TestSend_TwoFramesInOrder(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, Send(context.Background(), w, testSampleOptions()))

	require.Len(t, w.frames, 2)
	assert.Equal(t, "authenticate", decode(t, w.frames[0])["action"])
	assert.Equal(t, "message_post", decode(t, w.frames[1])["action"])
}

func TestSend_AuthenticateFrame(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, Send(context.Background(), w, testSampleOptions()))

	frame := decode(t, w.frames[0])
	headers, ok := frame["headers"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, headers["X-Auth-Token"])
	assert.NotEmpty(t, headers["X-Project-ID"])
	assert.NotContains(t, frame, "body")
}

func TestSend_MessagePostFrame(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, Send(context.Background(), w, testSampleOptions()))

	frame := decode(t, w.frames[1])
	body, ok := frame["body"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "SampleQueue", body["queue_name"])
	assert.Equal(t, []any{map[string]any{"body": "Zaqar Sample"}}, body["messages"])

	headers, ok := frame["headers"].(map[string]any)
	require.True(t, ok)
	assert.IsType(t, "", headers["Client-ID"])
	assert.IsType(t, "", headers["X-Project-ID"])
}

func TestSend_LiteralFrames(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, Send(context.Background(), w, testSampleOptions()))

	want := []string{
		`{"action":"authenticate","headers":{"X-Auth-Token":"8444886dd9b04a1b87ddb502b508261c",` +
			`"X-Project-ID":"7530fad032ca431e9dc8ed4a5de5d99c"}}`,
		`{"action":"message_post","body":{"messages":[{"body":"Zaqar Sample"}],"queue_name":"SampleQueue"},` +
			`"headers":{"Client-ID":"355186cd-d1e8-4108-a3ac-a2183697232a","X-Project-ID":"7530fad032ca431e9dc8ed4a5de5d99c"}}`,
	}
	require.Len(t, w.frames, len(want))
	for i := range want {
		assert.JSONEq(t, want[i], w.frames[i])
		assert.Equal(t, want[i], w.frames[i])
	}
}

func TestSend_FirstWriteFails(t *testing.T) {
	writeErr := errors.New("use of closed network connection")
	w := &fakeWriter{failAt: 1, err: writeErr}

	err := Send(context.Background(), w, testSampleOptions())
	assert.ErrorIs(t, err, writeErr)
	assert.ErrorContains(t, err, "send authenticate frame")
	assert.Empty(t, w.frames)
}

func TestSend_SecondWriteFails(t *testing.T) {
	writeErr := errors.New("broken pipe")
	w := &fakeWriter{failAt: 2, err: writeErr}

	err := Send(context.Background(), w, testSampleOptions())
	assert.ErrorIs(t, err, writeErr)
	assert.ErrorContains(t, err, "send message_post frame")
	assert.Len(t, w.frames, 1)
}

func TestSend_ConfiguredMessages(t *testing.T) {
	opts := testSampleOptions()
	opts.QueueName = "orders"
	opts.Messages = []string{"one", "two"}
	opts.MessageTTL = 60
	w := &fakeWriter{}
	require.NoError(t, Send(context.Background(), w, opts))

	body := decode(t, w.frames[1])["body"].(map[string]any)
	assert.Equal(t, "orders", body["queue_name"])
	assert.Equal(t, []any{
		map[string]any{"body": "one", "ttl": float64(60)},
		map[string]any{"body": "two", "ttl": float64(60)},
	}, body["messages"])
}
