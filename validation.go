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
	"strconv"
	"strings"
)

// diagnostics accumulates Warnings for a single record being parsed. It
// plays the same accumulator role the WARC header validator's
// Validation type plays, generalized from plain errors to structured
// Warnings that carry field identity and severity instead of just a
// message.
type diagnostics []Warning

func (d *diagnostics) add(w Warning) {
	*d = append(*d, w)
}

func (d *diagnostics) addAll(ws []Warning) {
	*d = append(*d, ws...)
}

func (d diagnostics) String() string {
	if len(d) == 0 {
		return ""
	}
	sb := strings.Builder{}
	for i, w := range d {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(": [")
		sb.WriteString(w.Level.String())
		sb.WriteString("] ")
		sb.WriteString(w.FieldName)
		sb.WriteString(": ")
		sb.WriteString(w.Description)
	}
	return sb.String()
}

// position tracks the 1-based physical line number as the stream driver
// advances, counting every line including blanks and skipped records.
type position struct {
	lineNumber int
}

func (p *position) incrLineNumber() *position {
	p.lineNumber++
	return p
}
