// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package fuzztesting helps keep fuzz targets fast.
package fuzztesting

import (
	"context"
	"testing"
	"time"

	"github.com/bufbuild/filterexpr/internal"
)

// Iterations is how many times [RunWithTimeout] calls its function.
const Iterations = 3

// RunWithTimeout calls fn several times, failing t if the calls take longer
// than a deadline in total.
//
// Parsing is linear in the size of the input, so a fuzz input that parses
// slowly is a bug even if the result is correct. fn should stop early once
// ctx is done.
func RunWithTimeout(t *testing.T, fn func(ctx context.Context)) {
	t.Helper()

	allowed := 2 * time.Second
	if internal.IsRace {
		// The race detector slows things down by up to an order of
		// magnitude, more if coverage is also on.
		allowed = 20 * time.Second
		t.Logf("allowing %v since race detector is enabled", allowed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), allowed)
	defer func() {
		if ctx.Err() != nil {
			t.Errorf("test took too long to execute (> %v)", allowed)
		}
		cancel()
	}()
	for range Iterations {
		if ctx.Err() != nil {
			break
		}
		fn(ctx)
	}
}
