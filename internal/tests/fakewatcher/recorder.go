// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fakewatcher

import (
	"context"
	"sync"

	"github.com/black-desk/wswatch/pkg/types"
)

// Recorder is an emitter remembering every batch it got.
type Recorder struct {
	mu      sync.Mutex
	batches []*types.ChangeBatch
	err     error
}

func (r *Recorder) Emit(_ context.Context, batch *types.ChangeBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.batches = append(r.batches, batch)
	return r.err
}

// Fail makes the following Emit calls return err after recording.
func (r *Recorder) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.err = err
}

func (r *Recorder) Batches() []*types.ChangeBatch {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*types.ChangeBatch(nil), r.batches...)
}
