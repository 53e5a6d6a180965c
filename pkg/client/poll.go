// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/hyperledger-iroha/harness/pkg/constants"
)

// ErrWaitTimeout is the only error the harness raises on its own; every
// other failure mode is whatever the external binary produced.
var ErrWaitTimeout = errors.New("wait timeout")

// WaitFor blocks until cond returns true, polling every 250ms. The wait
// is bounded by the optional timeout (default 20s). Plain busy-wait, no
// concurrency involved.
func WaitFor(cond func() bool, timeout ...time.Duration) error {
	limit := constants.DefaultWaitTimeout
	if len(timeout) > 0 {
		limit = timeout[0]
	}
	start := time.Now()
	for !cond() {
		if time.Since(start) > limit {
			return fmt.Errorf("%w: expected condition to be satisfied after waiting for %s", ErrWaitTimeout, limit)
		}
		time.Sleep(constants.DefaultPollInterval)
	}
	return nil
}
