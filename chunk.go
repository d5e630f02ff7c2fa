// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ChunkHandler receives one chunk of rows. The chunk is not reused by the
// engine after the handler returns.
type ChunkHandler func(chunk []MappedRow) error

// maxChunkPrealloc caps the initial capacity of a chunk buffer.
const maxChunkPrealloc = 4096

// ReadInChunks streams the rows of every sheet to handler in chunks of
// chunkSize; the last chunk may be shorter. The handler runs synchronously,
// and no row is read while it runs. An error returned by the handler stops
// the read and is returned as is.
func (e *Engine) ReadInChunks(path string, chunkSize int, handler ChunkHandler, headerEnabled bool) error {
	const op = "readInChunks"
	if chunkSize <= 0 {
		return fmt.Errorf("%s %q: chunk size %d: %w", op, path, chunkSize, ErrInvalidArgument)
	}
	if handler == nil {
		return fmt.Errorf("%s %q: nil handler: %w", op, path, ErrInvalidArgument)
	}
	newChunk := func() []MappedRow { return make([]MappedRow, 0, min(chunkSize, maxChunkPrealloc)) }

	chunk := newChunk()
	var chunks, rows int
	err := e.walk(op, path, walkOpts{header: headerEnabled}, visitor{
		row: func(rec MappedRow) error {
			chunk = append(chunk, rec)
			if len(chunk) < chunkSize {
				return nil
			}
			full := chunk
			chunk = newChunk()
			chunks++
			rows += len(full)
			return handler(full)
		},
	})
	if err != nil {
		return err
	}
	if len(chunk) != 0 {
		chunks++
		rows += len(chunk)
		if err := handler(chunk); err != nil {
			return err
		}
	}
	e.logger.Debug(op, "path", path, "chunks", chunks, "rows", humanize.Comma(int64(rows)))
	return nil
}
