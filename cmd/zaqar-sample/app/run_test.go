// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/buger/jsonparser"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangtaoking1/zaqar-sample/cmd/zaqar-sample/app/options"
)

const (
	testToken    = "8444886dd9b04a1b87ddb502b508261c"
	testProject  = "7530fad032ca431e9dc8ed4a5de5d99c"
	testClientID = "355186cd-d1e8-4108-a3ac-a2183697232a"
)

func newZaqarStub(t *testing.T, received chan<- string) *httptest.Server {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				return
			}
			received <- string(message)
			resp := fmt.Sprintf(`{"request":%s,"body":{},"headers":{"status":201}}`, message)
			if err := conn.WriteMessage(websocket.TextMessage, []byte(resp)); err != nil {
				return
			}
		}
	}))
	t.Cleanup(s.Close)

	return s
}

func testRunOptions(url string) *options.Options {
	opts := options.NewOptions()
	opts.Linger = 100 * time.Millisecond
	opts.WebSocket.URL = url
	opts.Zaqar.AuthToken = testToken
	opts.Zaqar.ProjectID = testProject
	opts.Zaqar.ClientID = testClientID
	return opts
}

func TestRunSample(t *testing.T) {
	received := make(chan string, 4)
	s := newZaqarStub(t, received)
	opts := testRunOptions(strings.Replace(s.URL, "http", "ws", 1))
	require.Empty(t, opts.Validate())

	start := time.Now()
	require.NoError(t, runSample(context.Background(), opts))
	assert.GreaterOrEqual(t, time.Since(start), opts.Linger)

	require.Len(t, received, 2)
	for _, action := range []string{"authenticate", "message_post"} {
		got, err := jsonparser.GetString([]byte(<-received), "action")
		require.NoError(t, err)
		assert.Equal(t, action, got)
	}
}

func TestRunSample_Canceled(t *testing.T) {
	received := make(chan string, 4)
	s := newZaqarStub(t, received)
	opts := testRunOptions(strings.Replace(s.URL, "http", "ws", 1))
	opts.Linger = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-received
		<-received
		cancel()
	}()

	done := make(chan error, 1)
	go func() { done <- runSample(ctx, opts) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runSample did not return after cancel")
	}
}

func TestRunSample_DialError(t *testing.T) {
	s := httptest.NewServer(http.NotFoundHandler())
	defer s.Close()

	err := runSample(context.Background(), testRunOptions(strings.Replace(s.URL, "http", "ws", 1)))
	assert.Error(t, err)
}

func TestPrintFrames_Raw(t *testing.T) {
	opts := options.NewFramesOptions()
	opts.Raw = true
	opts.Zaqar.AuthToken = testToken
	opts.Zaqar.ProjectID = testProject
	opts.Zaqar.ClientID = testClientID

	var buf bytes.Buffer
	require.NoError(t, printFrames(&buf, opts))

	want := `{"action":"authenticate","headers":{"X-Auth-Token":"8444886dd9b04a1b87ddb502b508261c",` +
		`"X-Project-ID":"7530fad032ca431e9dc8ed4a5de5d99c"}}` + "\n" +
		`{"action":"message_post","body":{"messages":[{"body":"Zaqar Sample"}],"queue_name":"SampleQueue"},` +
		`"headers":{"Client-ID":"355186cd-d1e8-4108-a3ac-a2183697232a","X-Project-ID":"7530fad032ca431e9dc8ed4a5de5d99c"}}` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintFrames_Pretty(t *testing.T) {
	opts := options.NewFramesOptions()
	opts.Zaqar.AuthToken = testToken
	opts.Zaqar.ProjectID = testProject
	opts.Zaqar.ClientID = testClientID

	var buf bytes.Buffer
	require.NoError(t, printFrames(&buf, opts))

	out := buf.String()
	assert.Less(t, strings.Index(out, "authenticate"), strings.Index(out, "message_post"))
	assert.Contains(t, out, "SampleQueue")
	assert.Contains(t, out, "ACTION")
}
