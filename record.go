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
	"fmt"

	"github.com/cdacos/allegro-cwr/internal/charset"
)

// CwrRecord is implemented uniformly by *Record for every one of the 32
// canonical record types. There is no per-type Go struct: CanonicalType
// plus the Schema it was parsed against is what a caller switches on.
type CwrRecord interface {
	RecordTypeCode() string
	CanonicalType() string
	Serialize(version CwrVersion, charset CharacterSet) []byte
}

// ParsedRecord is what Stream.Next returns: the decoded record, the
// diagnostics accumulated while decoding it, and the line it came from
// addressed by its 1-based physical position in the file.
type ParsedRecord struct {
	Record   CwrRecord
	Warnings []Warning
	Line     int
	Raw      string
	Context  ParsingContext
}

func (p *ParsedRecord) String() string {
	return fmt.Sprintf("line %d: %s (%d warning(s))", p.Line, p.Record.RecordTypeCode(), len(p.Warnings))
}

var _ CwrRecord = (*Record)(nil)

// NonRomanText decodes a non-roman-alphabet field's raw wire bytes into
// UTF-8 according to the transmission's declared character set. Fields
// not marked NonRoman in their schema are returned as-is.
func (r *Record) NonRomanText(name string, cs CharacterSet) (string, error) {
	raw := r.Text(name)
	if f, ok := r.schema.fieldByName(name); !ok || !f.NonRoman {
		return raw, nil
	}
	return charset.Decode([]byte(raw), charset.Name(cs))
}
