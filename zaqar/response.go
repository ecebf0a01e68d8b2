// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package zaqar

import (
	"github.com/buger/jsonparser"

	"github.com/wangtaoking1/zaqar-sample/errors"
)

// Response is a frame sent back by the service for a request, like:
//
//	{"request": {"action": "message_post", ...}, "body": {...}, "headers": {"status": 201}}
type Response struct {
	// Action is the action of the request this response answers.
	Action string
	Status int
	Body   []byte
}

// ParseResponse inspects a response frame without decoding its body.
func ParseResponse(data []byte) (*Response, error) {
	status, err := jsonparser.GetInt(data, "headers", "status")
	if err != nil {
		return nil, errors.Wrap(err, "read response status")
	}

	resp := &Response{Status: int(status)}
	action, err := jsonparser.GetString(data, "request", "action")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, errors.Wrap(err, "read request action")
	}
	resp.Action = action

	body, dataType, _, err := jsonparser.Get(data, "body")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, errors.Wrap(err, "read response body")
	}
	if dataType != jsonparser.NotExist && dataType != jsonparser.Null {
		resp.Body = body
	}

	return resp, nil
}

// IsSuccess reports whether the request was accepted.
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// ErrorMessage returns the "error" field the service sets in the body of a
// failed request.
func (r *Response) ErrorMessage() string {
	if len(r.Body) == 0 {
		return ""
	}
	msg, _ := jsonparser.GetString(r.Body, "error")

	return msg
}
