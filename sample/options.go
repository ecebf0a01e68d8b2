// Copyright 2025 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package sample

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/wangtaoking1/zaqar-sample/zaqar"
)

const (
	defaultQueueName   = "SampleQueue"
	defaultMessageBody = "Zaqar Sample"
)

var queueNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Options holds the values sent in the sample frames.
type Options struct {
	AuthToken string   `json:"-"          mapstructure:"auth-token"`
	ProjectID string   `json:"project-id" mapstructure:"project-id"`
	ClientID  string   `json:"client-id"  mapstructure:"client-id"`
	QueueName string   `json:"queue-name" mapstructure:"queue-name"`
	Messages  []string `json:"messages"   mapstructure:"messages"`
	// MessageTTL is the ttl in seconds of every posted message, 0 keeps the
	// queue default.
	MessageTTL int `json:"message-ttl" mapstructure:"message-ttl"`
}

// NewOptions returns options carrying the sample queue and message.
func NewOptions() *Options {
	return &Options{
		QueueName: defaultQueueName,
		Messages:  []string{defaultMessageBody},
	}
}

// Complete generates a client id when none is configured.
func (o *Options) Complete() error {
	if o.ClientID == "" {
		o.ClientID = uuid.New().String()
	}

	return nil
}

func (o *Options) Validate() []error {
	var errs []error
	if o.AuthToken == "" {
		errs = append(errs, fmt.Errorf("--zaqar.auth-token must be specified"))
	}
	if o.ProjectID == "" {
		errs = append(errs, fmt.Errorf("--zaqar.project-id must be specified"))
	}
	if _, err := uuid.Parse(o.ClientID); err != nil {
		errs = append(errs, fmt.Errorf("--zaqar.client-id %q must be a UUID: %v", o.ClientID, err))
	}
	if !queueNameRegexp.MatchString(o.QueueName) {
		errs = append(errs, fmt.Errorf("--zaqar.queue-name %q must match %s", o.QueueName, queueNameRegexp))
	}
	if len(o.Messages) == 0 {
		errs = append(errs, fmt.Errorf("--zaqar.messages must contain at least one message"))
	}
	if o.MessageTTL < 0 {
		errs = append(errs, fmt.Errorf("--zaqar.message-ttl %d must not be negative", o.MessageTTL))
	}

	return errs
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.AuthToken, "zaqar.auth-token", o.AuthToken, "The X-Auth-Token sent in the authenticate frame")
	fs.StringVar(&o.ProjectID, "zaqar.project-id", o.ProjectID, "The X-Project-ID sent in every frame")
	fs.StringVar(&o.ClientID, "zaqar.client-id", o.ClientID, "The Client-ID UUID of the message_post frame, generated when empty")
	fs.StringVar(&o.QueueName, "zaqar.queue-name", o.QueueName, "The queue messages are posted to")
	fs.StringSliceVar(&o.Messages, "zaqar.messages", o.Messages, "Bodies of the posted messages, comma separated")
	fs.IntVar(&o.MessageTTL, "zaqar.message-ttl", o.MessageTTL, "TTL in seconds of the posted messages, 0 uses the queue default")
}

// AuthenticateRequest builds the authenticate frame.
func (o *Options) AuthenticateRequest() *zaqar.Request {
	return zaqar.NewAuthenticate(o.AuthToken, o.ProjectID)
}

// MessagePostRequest builds the message_post frame.
func (o *Options) MessagePostRequest() *zaqar.Request {
	msgs := make([]zaqar.Message, 0, len(o.Messages))
	for _, body := range o.Messages {
		msgs = append(msgs, zaqar.Message{Body: body, TTL: o.MessageTTL})
	}

	return zaqar.NewMessagePost(o.ClientID, o.ProjectID, o.QueueName, msgs...)
}

// Requests returns the requests of the sample in send order.
func (o *Options) Requests() []*zaqar.Request {
	return []*zaqar.Request{o.AuthenticateRequest(), o.MessagePostRequest()}
}
