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

import "fmt"

// CwrVersion identifies one of the three CWR layout generations a record
// or stream may declare.
type CwrVersion float32

const (
	V20 CwrVersion = 2.0
	V21 CwrVersion = 2.1
	V22 CwrVersion = 2.2
)

func (v CwrVersion) String() string {
	return fmt.Sprintf("%.1f", float32(v))
}

// CharacterSet identifies the encoding the HDR record declared for the
// remainder of the transmission. Field boundaries stay byte-addressed
// regardless of which charset is in force; only ASCII mode additionally
// enforces that every byte is <= 127.
type CharacterSet string

const (
	CharsetASCII           CharacterSet = ""
	CharsetUTF8            CharacterSet = "UTF-8"
	CharsetUnicode         CharacterSet = "Unicode"
	CharsetTraditionalBig5 CharacterSet = "Traditional [Big5]"
	CharsetSimplifiedGB    CharacterSet = "Simplified [GB]"
)

// IsASCII reports whether strict <=127 byte validation applies.
func (c CharacterSet) IsASCII() bool {
	return c == CharsetASCII
}

// ParsingContext holds per-file metadata established once, from the HDR
// record, and is read-only for the remainder of the stream.
type ParsingContext struct {
	Version        CwrVersion
	CharacterSet   CharacterSet
	FileIdentifier string
}

// Clone returns a shallow copy, safe to attach to an individual
// ParsedRecord without aliasing the stream's live context.
func (c ParsingContext) Clone() ParsingContext {
	return c
}
