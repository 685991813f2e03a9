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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWriteRecordAppendsCRLF(t *testing.T) {
	line := buildLine(24, map[int]string{
		0:  "TER",
		3:  "00000001",
		11: "00000001",
		19: "I",
		20: "2136",
	})
	rec, _ := parseRecord(schemaTER, "TER", line, V21)

	var buf bytes.Buffer
	w := NewWriter(&buf, V21, CharsetASCII)
	require.NoError(t, w.WriteRecord(rec))
	require.NoError(t, w.Flush())

	assert.True(t, strings.HasSuffix(buf.String(), "\r\n"))
	assert.Equal(t, line+"\r\n", buf.String())
}

func TestWriterRejectsNonAsciiInAsciiMode(t *testing.T) {
	line := buildLine(663, map[int]string{
		0:  "NAT",
		3:  "00000001",
		11: "00000001",
	})
	rec, _ := parseRecord(schemaNAT, "NAT", line, V21)
	rec.Set("title", string([]byte{0xe9, 0x80}))

	var buf bytes.Buffer
	w := NewWriter(&buf, V21, CharsetASCII)
	err := w.WriteRecord(rec)
	require.Error(t, err)
	var nonAscii *NonAsciiOutputError
	assert.ErrorAs(t, err, &nonAscii)
}

func TestWriterFlushSurfacesNothingOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, V21, CharsetASCII)
	assert.NoError(t, w.Flush())
}
