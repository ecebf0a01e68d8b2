// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package zaqar models the JSON frames of the Zaqar websocket API.
package zaqar

import (
	"encoding/json"

	"github.com/wangtaoking1/zaqar-sample/errors"
)

// Actions understood by the Zaqar websocket transport.
const (
	ActionAuthenticate = "authenticate"
	ActionMessagePost  = "message_post"
)

// Header names used in request frames.
const (
	HeaderClientID  = "Client-ID"
	HeaderAuthToken = "X-Auth-Token"
	HeaderProjectID = "X-Project-ID"
)

// Headers are the per request headers of a frame. Keys are encoded in sorted
// order.
type Headers map[string]string

// Request is the envelope of every frame sent to the service.
type Request struct {
	Action  string  `json:"action"`
	Body    any     `json:"body,omitempty"`
	Headers Headers `json:"headers"`
}

// Message is a single message of a message_post request.
type Message struct {
	Body string `json:"body"`
	// TTL in seconds, the queue default is used when zero.
	TTL int `json:"ttl,omitempty"`
}

// MessagePostBody is the body of a message_post request.
type MessagePostBody struct {
	Messages  []Message `json:"messages"`
	QueueName string    `json:"queue_name"`
}

// NewAuthenticate builds the request that authenticates the connection.
func NewAuthenticate(authToken, projectID string) *Request {
	return &Request{
		Action: ActionAuthenticate,
		Headers: Headers{
			HeaderAuthToken: authToken,
			HeaderProjectID: projectID,
		},
	}
}

// NewMessagePost builds the request that posts msgs to the queue.
func NewMessagePost(clientID, projectID, queueName string, msgs ...Message) *Request {
	if msgs == nil {
		msgs = []Message{}
	}
	return &Request{
		Action: ActionMessagePost,
		Body: &MessagePostBody{
			Messages:  msgs,
			QueueName: queueName,
		},
		Headers: Headers{
			HeaderClientID:  clientID,
			HeaderProjectID: projectID,
		},
	}
}

// Encode returns the frame text of the request.
func (r *Request) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s request", r.Action)
	}

	return data, nil
}
