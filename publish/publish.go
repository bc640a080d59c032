// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast search progress and results on a zmq
// PUB socket
//
// every message is two frames: topic and JSON body
package publish

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/noncesearch/fault"
	"github.com/bitmark-inc/noncesearch/progress"
)

// message topics
const (
	TopicProgress = "progress"
	TopicResult   = "result"
)

const lingerTime = 100 * time.Millisecond

var validSchemes = []string{"tcp://", "ipc://", "inproc://"}

// Configuration - endpoints to bind
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// Publisher - a bound PUB socket
//
// zmq sockets are not thread safe so all sends are serialised
type Publisher struct {
	sync.Mutex

	log    *logger.L
	socket *zmq.Socket
}

// New - bind every broadcast endpoint
func New(configuration *Configuration, log *logger.L) (*Publisher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if 0 == len(configuration.Broadcast) {
		return nil, fault.ErrInvalidEndpoint
	}
	for i, address := range configuration.Broadcast {
		if !validEndpoint(address) {
			log.Errorf("broadcast[%d]=%q  error: %s", i, address, fault.ErrInvalidEndpoint)
			return nil, fault.ErrInvalidEndpoint
		}
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	socket.SetLinger(lingerTime)

	for i, address := range configuration.Broadcast {
		err = socket.Bind(address)
		if nil != err {
			log.Errorf("broadcast[%d]=%q  error: %s", i, address, err)
			socket.Close()
			return nil, err
		}
		log.Infof("broadcast on: %q", address)
	}

	return &Publisher{
		log:    log,
		socket: socket,
	}, nil
}

func validEndpoint(address string) bool {
	for _, scheme := range validSchemes {
		if strings.HasPrefix(address, scheme) && len(address) > len(scheme) {
			return true
		}
	}
	return false
}

// Write - publish a progress record
func (p *Publisher) Write(record progress.Record) error {
	return p.Send(TopicProgress, record)
}

// Send - publish any JSON encodable item under a topic
func (p *Publisher) Send(topic string, item interface{}) error {
	data, err := json.Marshal(item)
	if nil != err {
		return err
	}

	p.Lock()
	defer p.Unlock()

	if nil == p.socket {
		return fault.ErrNotInitialised
	}

	p.log.Tracef("send topic: %s  data: %s", topic, data)
	_, err = p.socket.SendMessage(topic, data)
	if nil != err {
		p.log.Errorf("send topic: %s  error: %s", topic, err)
	}
	return err
}

// Close - release the socket, further sends fail
func (p *Publisher) Close() error {
	p.Lock()
	defer p.Unlock()

	if nil == p.socket {
		return fault.ErrNotInitialised
	}
	err := p.socket.Close()
	p.socket = nil
	p.log.Info("closed")
	p.log.Flush()
	return err
}
