// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"log/slog"
	"os"

	"github.com/UNO-SOFT/zlog/v2"
)

// Verbose controls the verbosity of the default logger.
var Verbose zlog.VerboseVar

var defaultLogger = zlog.NewLogger(zlog.MaybeConsoleHandler(&Verbose, os.Stderr)).SLog()

// Engine composes the row mapper, readers, chunker, style resolver and
// writers over a Codec. An Engine holds no per-call state and may be shared.
type Engine struct {
	codec  Codec
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Engine using codec for all container access.
func New(codec Codec, opts ...Option) *Engine {
	e := &Engine{codec: codec, logger: defaultLogger}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger { return e.logger }
