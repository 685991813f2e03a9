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
	"strings"
)

// FieldKind selects which field-type codec in fieldtypes.go a FieldDef
// is parsed and serialized with. A target language with macro or code
// generation support would emit one concrete accessor per field; this
// codec instead carries the kind as data and dispatches on it at
// runtime, trading a little type safety for a single interpreter loop
// shared by all 32 record layouts.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNonRoman
	KindDate
	KindOptionalDate
	KindTime
	KindDuration
	KindYesNo
	KindFlagYNU
	KindOwnershipShare
	KindOptionalOwnershipShare
	KindCount
	KindOptionalCount
	KindCurrencyCode
	KindTisCode
	KindSocietyCode
	KindLanguageCode
	KindLanguageDialect
	KindIpiNameNumber
	KindIpiBaseNumber
	KindSenderType
	KindEnum
	KindConstant
)

type fieldCodec struct {
	parse func(raw, name, title string) (interface{}, []Warning)
	write func(v interface{}, width int) string
}

var fieldCodecs = map[FieldKind]fieldCodec{
	KindText:                   {parseText, writeText},
	KindNonRoman:               {parseNonRoman, writeNonRoman},
	KindDate:                   {parseDate, writeDate},
	KindOptionalDate:           {parseOptionalDate, writeDate},
	KindTime:                   {parseTime, writeClock},
	KindDuration:               {parseDuration, writeClock},
	KindYesNo:                  {parseYesNo, writeYesNo},
	KindFlagYNU:                {parseFlagYNU, writeFlagYNU},
	KindOwnershipShare:         {parseOwnershipShare, writeOwnershipShare},
	KindOptionalOwnershipShare: {parseOptionalOwnershipShare, writeOwnershipShare},
	KindCount:                  {parseCount, writeCount},
	KindOptionalCount:          {parseOptionalCount, writeCount},
	KindCurrencyCode:           {parseCurrencyCode, writeCurrencyCode},
	KindTisCode:                {parseTisCode, writeTisCode},
	KindSocietyCode:            {parseSocietyCode, writeSocietyCode},
	KindLanguageCode:           {parseLanguageCode, writeLanguageCode},
	KindLanguageDialect:        {parseLanguageDialect, writeLanguageDialect},
	KindIpiNameNumber:          {parseIpiNameNumber, writeIpiNameNumber},
	KindIpiBaseNumber:          {parseIpiBaseNumber, writeIpiBaseNumber},
	KindSenderType:             {parseSenderType, writeSenderType},
}

// FieldDef declares one fixed-width field: its byte span, its codec, and
// the version from which it exists. Records are described as an ordered
// []FieldDef rather than as a Go struct field per CWR field, the same
// declarative-table approach the header field definitions in this
// package's WARC ancestor used for a smaller, fixed set of headers.
type FieldDef struct {
	Name       string
	Title      string
	Offset     int
	Width      int
	Kind       FieldKind
	Enum       *EnumSet
	Constant   string
	MinVersion CwrVersion
	NonRoman   bool
}

func (f FieldDef) appliesTo(version CwrVersion) bool {
	return f.MinVersion == 0 || version >= f.MinVersion
}

func (f FieldDef) end() int {
	return f.Offset + f.Width
}

// Schema is the declarative layout for one canonical CWR record type.
// Record.values is keyed by FieldDef.Name.
type Schema struct {
	CanonicalType string
	Title         string
	Fields        []FieldDef
	Validate      func(r *Record, version CwrVersion) []Warning
}

func (s *Schema) fieldByName(name string) (FieldDef, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Record is the single runtime representation for every CWR record type.
// Field values are stored as the Go type each FieldKind's parse function
// returns (string, bool, *int, *CwrDate, *ClockTime, Flag) and retrieved
// with the typed accessors below (Text, Bool, Flag, Int, IntPtr, Date,
// Clock).
type Record struct {
	schema   *Schema
	typeCode string
	values   map[string]interface{}
}

func newRecord(schema *Schema, typeCode string) *Record {
	return &Record{schema: schema, typeCode: typeCode, values: make(map[string]interface{}, len(schema.Fields))}
}

// RecordTypeCode returns the 3-byte code exactly as it appeared on the
// line, which for aliased types (REV, OPU, OWR, ...) differs from
// CanonicalType.
func (r *Record) RecordTypeCode() string {
	return r.typeCode
}

// CanonicalType returns the schema's own record type, the form every
// alias is dispatched to for field layout and validation purposes.
func (r *Record) CanonicalType() string {
	return r.schema.CanonicalType
}

func (r *Record) Schema() *Schema {
	return r.schema
}

func (r *Record) raw(name string) interface{} {
	return r.values[name]
}

func (r *Record) Text(name string) string {
	s, _ := r.values[name].(string)
	return s
}

func (r *Record) Bool(name string) bool {
	b, _ := r.values[name].(bool)
	return b
}

func (r *Record) Flag(name string) Flag {
	f, _ := r.values[name].(Flag)
	return f
}

func (r *Record) Int(name string) int {
	switch v := r.values[name].(type) {
	case int:
		return v
	case *int:
		if v != nil {
			return *v
		}
	}
	return 0
}

func (r *Record) IntPtr(name string) *int {
	p, _ := r.values[name].(*int)
	return p
}

func (r *Record) Date(name string) *CwrDate {
	d, _ := r.values[name].(*CwrDate)
	return d
}

func (r *Record) Clock(name string) *ClockTime {
	c, _ := r.values[name].(*ClockTime)
	return c
}

func (r *Record) Set(name string, value interface{}) {
	r.values[name] = value
}

// Serialize renders the record back to its fixed-width line form for the
// given version and charset, omitting fields whose MinVersion exceeds
// version and padding any resulting gap with spaces. The returned slice
// does not include the line terminator; the stream writer appends CRLF.
func (r *Record) Serialize(version CwrVersion, charset CharacterSet) []byte {
	var sb strings.Builder
	cursor := 0
	for _, f := range r.schema.Fields {
		if !f.appliesTo(version) {
			continue
		}
		if f.Offset > cursor {
			sb.WriteString(strings.Repeat(" ", f.Offset-cursor))
			cursor = f.Offset
		}
		var out string
		if f.Kind == KindConstant {
			code := f.Constant
			if r.typeCode != "" {
				code = r.typeCode
			}
			out = padRight(code, f.Width)
		} else if f.Kind == KindEnum {
			out = padRight(r.Text(f.Name), f.Width)
		} else {
			codec, ok := fieldCodecs[f.Kind]
			if !ok {
				out = strings.Repeat(" ", f.Width)
			} else {
				out = codec.write(r.values[f.Name], f.Width)
			}
		}
		sb.WriteString(out)
		cursor += f.Width
	}
	return []byte(sb.String())
}

// parseRecord slices line according to schema's field offsets for the
// given version, decodes each field with its codec, and runs the
// schema's cross-field Validate hook last so inter-field rules see a
// fully populated Record.
func parseRecord(schema *Schema, typeCode string, line string, version CwrVersion) (*Record, []Warning) {
	rec := newRecord(schema, typeCode)
	var warnings diagnostics

	for _, f := range schema.Fields {
		if !f.appliesTo(version) {
			continue
		}
		raw := sliceField(line, f.Offset, f.Width)

		if f.Kind == KindConstant {
			rec.Set(f.Name, strings.TrimSpace(raw))
			continue
		}
		if f.Kind == KindEnum {
			v, ws := f.Enum.parse(raw, f.Name, f.Title)
			rec.Set(f.Name, v)
			warnings.addAll(ws)
			continue
		}
		codec, ok := fieldCodecs[f.Kind]
		if !ok {
			continue
		}
		v, ws := codec.parse(raw, f.Name, f.Title)
		rec.Set(f.Name, v)
		warnings.addAll(ws)
	}

	if schema.Validate != nil {
		warnings.addAll(schema.Validate(rec, version))
	}
	return rec, []Warning(warnings)
}

// sliceField extracts the byte span [offset, offset+width) from line,
// padding with spaces if the physical line is shorter than the schema
// expects (common for older-version files hitting newer optional tails).
func sliceField(line string, offset, width int) string {
	if offset >= len(line) {
		return strings.Repeat(" ", width)
	}
	end := offset + width
	if end > len(line) {
		return padRight(line[offset:], width)
	}
	return line[offset:end]
}
