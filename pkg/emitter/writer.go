// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package emitter

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/wswatch/pkg/types"
)

// Writer prints one JSON encoded signal per line.
type Writer struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewWriter(w io.Writer) (ret *Writer, err error) {
	if w == nil {
		err = ErrWriterMissing
		return
	}

	ret = &Writer{enc: json.NewEncoder(w)}
	return
}

func (w *Writer) Emit(ctx context.Context, batch *types.ChangeBatch) (err error) {
	defer Wrap(&err, "write change batch")

	if err = ctx.Err(); err != nil {
		return
	}

	if batch.Empty() {
		err = ErrEmptyBatch
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	err = w.enc.Encode(types.NewFSChangeSignal(batch))
	return
}
