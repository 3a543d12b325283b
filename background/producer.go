// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/clock"
)

// BlockStarter - anything that can open a new block
type BlockStarter interface {
	NewBlock(timestamp clock.Moment) (uint64, error)
}

// Producer - opens a block on every tick of a fixed interval
type Producer struct {
	log      *logger.L
	host     BlockStarter
	interval time.Duration
	now      func() clock.Moment
}

// wall clock in whole seconds
func unixNow() clock.Moment {
	return clock.Moment(time.Now().Unix())
}

// NewProducer - create a producer, now may be nil to use the wall clock
func NewProducer(host BlockStarter, interval time.Duration, now func() clock.Moment) *Producer {
	if nil == now {
		now = unixNow
	}
	return &Producer{
		log:      logger.New("producer"),
		host:     host,
		interval: interval,
		now:      now,
	}
}

// Run - open the first block at once, then one per interval
func (p *Producer) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log
	log.Infof("starting… interval: %s", p.interval)

	p.produce()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			p.produce()
		}
	}

	log.Info("stopped")
}

func (p *Producer) produce() {
	timestamp := p.now()
	number, err := p.host.NewBlock(timestamp)
	if nil != err {
		p.log.Errorf("block at: %d  error: %s", timestamp, err)
		return
	}
	p.log.Debugf("block: %d  timestamp: %d", number, timestamp)
}
