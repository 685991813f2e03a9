/*
 * Copyright 2021 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cwr

import (
	"github.com/sirupsen/logrus"
)

type streamOptions struct {
	versionOverride *CwrVersion
	charsetHint     *CharacterSet
	filename        string
	strictAscii     bool
	logger          logrus.FieldLogger
}

func defaultStreamOptions() streamOptions {
	return streamOptions{
		strictAscii: true,
		logger:      logrus.StandardLogger(),
	}
}

// StreamOption configures OpenCwrStream's header sniffing and per-line
// decoding behavior.
type StreamOption interface {
	apply(*streamOptions)
}

type funcStreamOption struct {
	f func(*streamOptions)
}

func (fo *funcStreamOption) apply(o *streamOptions) {
	fo.f(o)
}

func newFuncStreamOption(f func(*streamOptions)) *funcStreamOption {
	return &funcStreamOption{f: f}
}

func newStreamOptions(opts ...StreamOption) *streamOptions {
	o := defaultStreamOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	return &o
}

// WithVersionHint forces the stream to use the given CWR version instead
// of inferring it from the filename or the HDR record. Takes precedence
// over every other signal.
func WithVersionHint(version CwrVersion) StreamOption {
	return newFuncStreamOption(func(o *streamOptions) {
		o.versionOverride = &version
	})
}

// WithCharsetHint seeds the stream's starting character set before the
// HDR record is parsed, used when the caller already knows the charset
// and wants it applied to the very first line.
func WithCharsetHint(charset CharacterSet) StreamOption {
	return newFuncStreamOption(func(o *streamOptions) {
		o.charsetHint = &charset
	})
}

// WithFilename gives the stream the source filename so version can be
// inferred from a ".V20"/".V21"/".V22" suffix. A filename match takes
// precedence over the HDR record's version subfield and the line-length
// heuristic; only WithVersionHint outranks it.
//
// defaults to no filename, skipping this precedence tier
func WithFilename(name string) StreamOption {
	return newFuncStreamOption(func(o *streamOptions) {
		o.filename = name
	})
}

// WithStrictASCII sets whether, while the stream's character set is
// ASCII, a byte above 127 anywhere on a line fails the stream with a
// NonAsciiInputError. With strict set to false such bytes reach the
// field parsers instead, and text fields report them as Critical
// warnings.
//
// defaults to true
func WithStrictASCII(strict bool) StreamOption {
	return newFuncStreamOption(func(o *streamOptions) {
		o.strictAscii = strict
	})
}

// WithLogger overrides the logger the stream uses for its own debug
// trace (BOM detection, version inference).
//
// defaults to logrus.StandardLogger()
func WithLogger(logger logrus.FieldLogger) StreamOption {
	return newFuncStreamOption(func(o *streamOptions) {
		o.logger = logger
	})
}
