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
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var bomVariants = []struct {
	name string
	bom  []byte
}{
	{"UTF-32LE", []byte{0xff, 0xfe, 0x00, 0x00}},
	{"UTF-32BE", []byte{0x00, 0x00, 0xfe, 0xff}},
	{"UTF-8", []byte{0xef, 0xbb, 0xbf}},
	{"UTF-16LE", []byte{0xff, 0xfe}},
	{"UTF-16BE", []byte{0xfe, 0xff}},
}

// stripBom reports the BOM variant name found at the start of b, if any,
// and returns the slice with it removed. Longer BOMs are checked first
// so a UTF-16LE false match doesn't mask an actual UTF-32LE BOM, since
// the UTF-16LE two-byte sequence is a strict prefix of UTF-32LE's four.
func stripBom(b []byte) (string, []byte) {
	for _, v := range bomVariants {
		if bytes.HasPrefix(b, v.bom) {
			return v.name, b[len(v.bom):]
		}
	}
	return "", b
}

var filenameVersionPattern = regexp.MustCompile(`(?i)\.V(\d{2})$`)

// versionFromFilename implements the filename precedence tier: a
// trailing ".zip" or ".cwr" suffix is stripped before the ".Vxx" pattern
// is matched, so "CW210001_ABC.V21.zip" and "CW210001_ABC.V21" resolve
// the same way.
func versionFromFilename(name string) (CwrVersion, bool) {
	base := name
	for _, suffix := range []string{".zip", ".ZIP", ".cwr", ".CWR"} {
		base = strings.TrimSuffix(base, suffix)
	}
	base = filepath.Base(base)
	m := filenameVersionPattern.FindStringSubmatch(base)
	if m == nil {
		return 0, false
	}
	switch m[1] {
	case "20":
		return V20, true
	case "21":
		return V21, true
	case "22":
		return V22, true
	}
	return 0, false
}

// versionFromHdr reads the HDR record's own explicit version subfield
// (present from v2.1 on). Returns ok=false for a v2.0 file, which has no
// such subfield and must fall through to the length heuristic.
func versionFromHdr(hdrLine string) (CwrVersion, bool) {
	if len(hdrLine) < 104 {
		return 0, false
	}
	raw := strings.TrimSpace(hdrLine[101:104])
	switch raw {
	case "2.1":
		return V21, true
	case "2.2":
		return V22, true
	}
	return 0, false
}

// versionByLength is the last-resort heuristic: longer physical lines
// imply a newer, wider layout. >104 bytes only happens once v2.2's
// tail fields are in play; 80-104 covers v2.1; anything shorter is
// treated as the original v2.0 layout.
func versionByLength(lineLen int) CwrVersion {
	switch {
	case lineLen > 104:
		return V22
	case lineLen >= 80:
		return V21
	default:
		return V20
	}
}

// resolveVersion applies the full precedence chain: caller override,
// then filename, then the HDR record's own subfield, then the
// line-length heuristic.
func resolveVersion(opts *streamOptions, hdrLine string) CwrVersion {
	if opts.versionOverride != nil {
		return *opts.versionOverride
	}
	if opts.filename != "" {
		if v, ok := versionFromFilename(opts.filename); ok {
			return v
		}
	}
	if v, ok := versionFromHdr(hdrLine); ok {
		return v
	}
	return versionByLength(len(hdrLine))
}

// Stream is a pull-iterator over a CWR transmission: one ParsedRecord
// per call to Next, until io.EOF.
type Stream struct {
	r       *bufio.Reader
	opts    *streamOptions
	ctx     ParsingContext
	pos     position
	started bool
}

// OpenCwrStream sniffs the first line for a BOM and the "HDR" marker,
// establishes the transmission's CwrVersion via resolveVersion, and
// returns a Stream ready for repeated Next calls. The returned error is
// one of InvalidHeaderError, NonAsciiInputError, BadFormatError or an
// IoFailureError wrapping the reader's own failure.
func OpenCwrStream(r io.Reader, opts ...StreamOption) (*Stream, error) {
	o := newStreamOptions(opts...)
	br := bufio.NewReaderSize(r, 64*1024)

	lead, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, NewIoFailureError(err)
	}
	if bomName, stripped := stripBom(lead); bomName != "" {
		o.logger.WithField("bom", bomName).Debug("stripped byte order mark")
		discard := len(lead) - len(stripped)
		if _, err := br.Discard(discard); err != nil {
			return nil, NewIoFailureError(err)
		}
	}

	firstLine, err := peekLine(br)
	if err != nil && err != io.EOF {
		return nil, NewIoFailureError(err)
	}
	if !strings.HasPrefix(firstLine, "HDR") {
		return nil, &InvalidHeaderError{FoundBytes: []byte(firstLine)[:min(len(firstLine), 3)]}
	}
	charset := CharsetASCII
	if o.charsetHint != nil {
		charset = *o.charsetHint
	}
	if charset.IsASCII() && o.strictAscii {
		for i := 0; i < len(firstLine); i++ {
			if firstLine[i] > 127 {
				return nil, &NonAsciiInputError{Line: 1, BytePos: i, ByteValue: firstLine[i]}
			}
		}
	}

	version := resolveVersion(o, firstLine)
	o.logger.WithField("version", version.String()).Debug("resolved cwr version")

	s := &Stream{
		r:    br,
		opts: o,
		ctx: ParsingContext{
			Version:      version,
			CharacterSet: charset,
		},
	}
	return s, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// peekLine returns the next CRLF- or LF-terminated line without
// consuming it from the buffer.
func peekLine(br *bufio.Reader) (string, error) {
	for size := 256; ; size *= 2 {
		b, err := br.Peek(size)
		if idx := bytes.IndexByte(b, '\n'); idx >= 0 {
			line := b[:idx]
			line = bytes.TrimSuffix(line, []byte{'\r'})
			return string(line), nil
		}
		if err != nil {
			line := bytes.TrimSuffix(b, []byte{'\r'})
			return string(line), err
		}
	}
}

// Next decodes the next physical line into a ParsedRecord. It returns
// io.EOF once the stream is exhausted, and NonAsciiInputError /
// BadFormatError for the structural failures a line can carry.
func (s *Stream) Next() (*ParsedRecord, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, NewIoFailureError(err)
	}
	s.pos.incrLineNumber()
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return s.Next()
	}

	if s.ctx.CharacterSet.IsASCII() && s.opts.strictAscii {
		for i := 0; i < len(line); i++ {
			if line[i] > 127 {
				return nil, &NonAsciiInputError{Line: s.pos.lineNumber, BytePos: i, ByteValue: line[i]}
			}
		}
	}

	if len(line) < 3 {
		return nil, &BadFormatError{Message: "line shorter than a record type code"}
	}
	typeCode := line[0:3]

	if typeCode == "HDR" && !s.started {
		s.started = true
		s.captureHeaderIdentity(line)
	}

	schema, ok := LookupSchema(typeCode)
	if !ok {
		return nil, &BadFormatError{Message: "unknown record type " + strconv.Quote(typeCode)}
	}

	rec, warnings := parseRecord(schema, typeCode, line, s.ctx.Version)
	return &ParsedRecord{
		Record:   rec,
		Warnings: warnings,
		Line:     s.pos.lineNumber,
		Raw:      line,
		Context:  s.ctx.Clone(),
	}, nil
}

func (s *Stream) captureHeaderIdentity(line string) {
	if schema, ok := LookupSchema("HDR"); ok {
		rec, _ := parseRecord(schema, "HDR", line, s.ctx.Version)
		s.ctx.FileIdentifier = rec.Text("sender_id")
		if cs := rec.Text("character_set"); cs != "" {
			s.ctx.CharacterSet = CharacterSet(cs)
		}
	}
	if s.ctx.FileIdentifier == "" {
		// A blank HDR.sender_id still needs a stable handle for log
		// correlation across the life of the stream.
		s.ctx.FileIdentifier = uuid.New().String()
	}
}

// CachedHeaderInfo returns the ParsingContext established by the HDR
// record, available once Next has returned it.
func (s *Stream) CachedHeaderInfo() ParsingContext {
	return s.ctx
}
